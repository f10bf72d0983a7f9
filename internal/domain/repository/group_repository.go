package repository

import "github.com/nutrimilho/estoque-api/internal/domain/entity"

// GroupRepository puerto de persistencia para grupos de productos.
type GroupRepository interface {
	Create(group *entity.ProductGroup) error
	GetByID(id string) (*entity.ProductGroup, error)
	// List devuelve todos los grupos, más recientes primero.
	List() ([]*entity.ProductGroup, error)
	Delete(id string) error
}
