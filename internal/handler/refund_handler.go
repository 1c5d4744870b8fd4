package handler

import (
	"net/http"

	"orderconsole/internal/domain/model"
	"orderconsole/internal/usecase"
	"orderconsole/internal/validator"

	"github.com/labstack/echo/v4"
)

type RefundHandler struct {
	uc       *usecase.RefundUsecase
	validate *validator.Validator
}

func NewRefundHandler(uc *usecase.RefundUsecase, v *validator.Validator) *RefundHandler {
	return &RefundHandler{uc: uc, validate: v}
}

type ManualRefundRequest struct {
	Action        string `json:"action" validate:"required,refund_action"`
	Note          string `json:"note" validate:"max=500"`
	Method        string `json:"method" validate:"max=100"`
	TransactionID string `json:"transactionId" validate:"max=100"`
}

func (h *RefundHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/orders/:id/refund/auto", h.auto)
	admin.POST("/orders/:id/refund/manual", h.manual)
	admin.POST("/orders/:id/refund/check", h.check)
}

func (h *RefundHandler) auto(c echo.Context) error {
	operatorID, ok := getOperatorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	out, err := h.uc.AutoRefund(c.Request().Context(), operatorID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RefundHandler) manual(c echo.Context) error {
	var req ManualRefundRequest
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

	out, err := h.uc.ManualRefund(c.Request().Context(), operatorID, c.Param("id"), model.ManualRefund{
		Action:        model.RefundAction(req.Action),
		Note:          req.Note,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RefundHandler) check(c echo.Context) error {
	operatorID, ok := getOperatorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	out, err := h.uc.CheckRefundStatus(c.Request().Context(), operatorID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
