package handler

import (
	"errors"
	"net/http"

	"orderconsole/internal/domain/model"
	"orderconsole/internal/middleware"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// writeError maps usecase errors onto status codes. Anything untyped is a 500.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var (
		ve *model.ValidationError
		pe *model.PreconditionError
		pv *model.ProviderError
		te *model.TransportError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	case errors.Is(err, model.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
	case errors.As(err, &pe):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: pe.Error()})
	case errors.As(err, &pv):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: pv.Error()})
	case errors.As(err, &te):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: te.Error()})
	case errors.As(err, &he):
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return c.JSON(he.Code, ErrorResponse{Error: msg})
	}

	//500
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// AuthJWTが入れたoperator idを取得する
func getOperatorID(c echo.Context) (string, bool) {
	id, ok := c.Get(middleware.CtxOperatorIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
