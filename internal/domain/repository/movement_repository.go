package repository

import (
	"time"

	"github.com/nutrimilho/estoque-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
// Los campos en nil/vacío no filtran.
type MovementFilter struct {
	ProductID string
	GroupID   string
	Type      string // entrada | saida
	From      *time.Time
	To        *time.Time
	Limit     int // 0 = sin límite
	Offset    int
}

// MovementRepository puerto de persistencia para movimientos de stock.
// Los movimientos nunca se actualizan; solo se crean y se borran en cascada.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos según filtro, más recientes primero.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	DeleteByProduct(productID string) error
	// DeleteByGroup borra los movimientos de todos los productos del grupo.
	DeleteByGroup(groupID string) error
}
