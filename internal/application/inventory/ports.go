package inventory

import (
	"context"

	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del backend, pasando
// repositorios atados a esa transacción. Garantiza que las operaciones
// multi-paso (movimiento + actualización de stock, cascadas de borrado) sean
// atómicas: o se ve todo, o no se ve nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		groupRepo repository.GroupRepository,
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
