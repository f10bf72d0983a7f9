package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockAlert es una alerta derivada, no persistida: se recalcula desde el
// snapshot de productos en cada refresh. El ID es determinista en función del
// producto ("alert-<productID>") para que la identidad sobreviva los refresh.
type LowStockAlert struct {
	ID           string
	ProductID    string
	ProductName  string
	ProductCode  string
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	GroupName    string
	GroupColor   string
	CreatedAt    time.Time
	IsRead       bool
}

// AlertIDFor deriva el ID de alerta de un producto.
func AlertIDFor(productID string) string {
	return "alert-" + productID
}
