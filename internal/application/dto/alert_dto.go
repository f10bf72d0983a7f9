package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertResponse representación HTTP de una alerta de estoque baixo.
type AlertResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductCode  string          `json:"product_code"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	GroupName    string          `json:"group_name"`
	GroupColor   string          `json:"group_color"`
	CreatedAt    time.Time       `json:"created_at"`
	IsRead       bool            `json:"is_read"`
}

// AlertListResponse listado de alertas con contador de no leídas.
type AlertListResponse struct {
	Items       []AlertResponse `json:"items"`
	UnreadCount int             `json:"unread_count"`
}
