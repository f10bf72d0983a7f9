package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest registro de una entrada o salida de stock.
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // entrada | saida
	Quantity  decimal.Decimal `json:"quantity"`
	Company   string          `json:"company"`
	Notes     string          `json:"notes"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	Company       string          `json:"company,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
