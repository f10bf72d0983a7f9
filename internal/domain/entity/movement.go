package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Los valores vienen del negocio (pt-BR).
const (
	MovementTypeEntrada = "entrada" // entrada de mercancía, suma stock
	MovementTypeSaida   = "saida"   // salida de mercancía, resta stock
)

// ValidMovementType indica si s es un tipo de movimiento conocido.
func ValidMovementType(s string) bool {
	return s == MovementTypeEntrada || s == MovementTypeSaida
}

// StockMovement es un asiento del libro de movimientos. PreviousStock y
// NewStock son fotos tomadas al crear el registro y nunca se recalculan.
// Un movimiento jamás se edita; solo desaparece en cascada al borrar el producto.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // entrada | saida
	Quantity      decimal.Decimal // siempre > 0; el signo lo aporta Type
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	Company       string // proveedor/destino, vacío si no aplica
	Notes         string
	CreatedAt     time.Time
}
