package repository

import (
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE)
	// cuando el backend lo soporta. Usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// GetByCode busca por código con comparación case-insensitive.
	GetByCode(code string) (*entity.Product, error)
	// List devuelve todos los productos, más recientes primero.
	List() ([]*entity.Product, error)
	ListByGroup(groupID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija CurrentStock; lo usa el motor de movimientos dentro de la tx.
	UpdateStock(id string, newStock decimal.Decimal) error
	Delete(id string) error
	DeleteByGroup(groupID string) error
}
