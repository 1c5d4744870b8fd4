package model

import "time"

type HistoryType string

const (
	HistoryPayment  HistoryType = "payment"
	HistoryShipping HistoryType = "shipping"
)

// StatusHistoryEntry is one immutable line of the backend's transition log.
type StatusHistoryEntry struct {
	Type        HistoryType `json:"type" validate:"required,oneof=payment shipping"`
	From        string      `json:"from"`
	To          string      `json:"to" validate:"required"`
	Note        string      `json:"note,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	IsAutomatic bool        `json:"isAutomatic"`
	UpdatedBy   string      `json:"updatedBy"`
	UpdatedAt   time.Time   `json:"updatedAt" validate:"required"`
}
