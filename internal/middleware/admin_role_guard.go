package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleが管理画面を使えるroleかどうかを確認します。
//ADMINは全操作、STAFFも注文操作は可。

func AdminRoleGuard(allowed ...string) echo.MiddlewareFunc {
	if len(allowed) == 0 {
		allowed = []string{"ADMIN"}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxOperatorRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			for _, r := range allowed {
				if role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, errorJSON("admin only"))
		}
	}
}
