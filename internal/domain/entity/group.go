package entity

import "time"

// ProductGroup representa un grupo de productos (ej. "Produtos Ensacados").
// Color identifica el grupo visualmente en dashboards y reportes.
type ProductGroup struct {
	ID          string
	Name        string
	Description string // vacío si no se indicó
	Color       string // hex, ej. "#22c55e"
	CreatedAt   time.Time
}
