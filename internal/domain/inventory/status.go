// Package inventory contiene reglas puras del dominio de stock.
package inventory

import (
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
)

// StockStatus clasificación del stock actual de un producto.
type StockStatus string

const (
	StatusZero StockStatus = "zero" // stock en cero
	StatusLow  StockStatus = "low"  // por debajo del mínimo configurado
	StatusOK   StockStatus = "ok"
)

// Classify determina el estado del stock de un producto.
// El umbral usa comparación estricta (<), igual que el contador del dashboard.
func Classify(p *entity.Product) StockStatus {
	if p.CurrentStock.IsZero() {
		return StatusZero
	}
	if p.MinStock != nil && p.CurrentStock.LessThan(*p.MinStock) {
		return StatusLow
	}
	return StatusOK
}

// SortKey clave de ordenamiento para listados por estado: zero < low < ok.
func SortKey(s StockStatus) int {
	switch s {
	case StatusZero:
		return 0
	case StatusLow:
		return 1
	default:
		return 2
	}
}

// IsLowForAlert indica si el producto entra en el conjunto de alertas de
// estoque baixo. A diferencia de Classify, el evaluador de alertas usa <=
// (comportamiento heredado del sistema original, mantenido a propósito).
func IsLowForAlert(p *entity.Product) bool {
	return p.MinStock != nil && p.CurrentStock.LessThanOrEqual(*p.MinStock)
}
