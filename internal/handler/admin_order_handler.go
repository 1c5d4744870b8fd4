package handler

import (
	"net/http"
	"strconv"

	"orderconsole/internal/domain/model"
	"orderconsole/internal/usecase"
	"orderconsole/internal/validator"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc       *usecase.AdminOrderUsecase
	validate *validator.Validator
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase, v *validator.Validator) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, validate: v}
}

// OrderStatusUpdateRequest: どちらか片方だけでも可
type OrderStatusUpdateRequest struct {
	ShippingStatus string `json:"shippingStatus" validate:"omitempty,shipping_status"`
	PaymentStatus  string `json:"paymentStatus" validate:"omitempty,payment_status"`
	Note           string `json:"note" validate:"max=500"`
	Reason         string `json:"reason" validate:"max=500"`
}

type OrderCancelRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func (h *AdminOrderHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/orders", h.list)
	admin.GET("/orders/:id", h.get)
	admin.GET("/orders/:id/history", h.history)
	admin.PUT("/orders/:id/status", h.updateStatus)
	admin.POST("/orders/:id/cancel", h.cancel)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	f := model.OrderFilter{Page: page, Limit: limit}
	if v := c.QueryParam("refundStatus"); v != "" {
		rs, err := model.ParseRefundStatus(v)
		if err != nil {
			return writeError(c, err)
		}
		f.RefundStatus = rs
	}

	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) history(c echo.Context) error {
	out, err := h.uc.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return writeError(c, err)
	}

	// 操作した管理者IDを取得（監査ログ用）
	operatorID, ok := getOperatorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), operatorID, c.Param("id"), usecase.UpdateOrderStatusInput{
		ShippingStatus: req.ShippingStatus,
		PaymentStatus:  req.PaymentStatus,
		Note:           req.Note,
		Reason:         req.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) cancel(c echo.Context) error {
	var req OrderCancelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return writeError(c, err)
	}

	operatorID, ok := getOperatorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Cancel(c.Request().Context(), operatorID, c.Param("id"), req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
