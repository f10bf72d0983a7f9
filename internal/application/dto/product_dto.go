package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto con stock inicial.
type CreateProductRequest struct {
	GroupID      string           `json:"group_id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	CurrentStock decimal.Decimal  `json:"current_stock"`
	MinStock     *decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest actualización parcial. Los campos nil no se tocan.
// CurrentStock permite sobrescribir el stock directamente, saltándose el libro
// de movimientos; es una vía de escape para corregir errores de digitación,
// no el camino normal de ajuste.
type UpdateProductRequest struct {
	GroupID      *string          `json:"group_id"`
	Code         *string          `json:"code"`
	Name         *string          `json:"name"`
	Unit         *string          `json:"unit"`
	CurrentStock *decimal.Decimal `json:"current_stock"`
	MinStock     *decimal.Decimal `json:"min_stock"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	GroupID      string           `json:"group_id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	CurrentStock decimal.Decimal  `json:"current_stock"`
	MinStock     *decimal.Decimal `json:"min_stock,omitempty"`
	Status       string           `json:"status"` // zero | low | ok
	CreatedAt    time.Time        `json:"created_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
