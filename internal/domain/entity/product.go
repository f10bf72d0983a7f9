package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Code es único entre todos los productos (comparación case-insensitive).
// CurrentStock se actualiza únicamente vía movimientos, salvo la edición
// directa de producto que lo puede sobrescribir para corregir errores de digitación.
type Product struct {
	ID           string
	GroupID      string
	Code         string
	Name         string
	Unit         string // unidade, bag, ton, ...
	CurrentStock decimal.Decimal
	MinStock     *decimal.Decimal // nil = sin umbral configurado
	CreatedAt    time.Time
}
