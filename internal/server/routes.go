package server

import (
	"net/http"

	"orderconsole/internal/config"
	"orderconsole/internal/handler"
	"orderconsole/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything mounted under /admin.
type Handlers struct {
	Orders   *handler.AdminOrderHandler
	Refunds  *handler.RefundHandler
	Audit    *handler.AuditLogHandler
	Statuses *handler.OrderStatusHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, gatherer prometheus.Gatherer) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.SuccessResponse{Message: "ok"})
	})
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard(cfg.AdminRoles...))

	h.Orders.RegisterRoutes(admin)
	h.Refunds.RegisterRoutes(admin)
	h.Audit.RegisterRoutes(admin)
	h.Statuses.RegisterRoutes(admin)
}
