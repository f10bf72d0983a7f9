package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
	"github.com/nutrimilho/estoque-api/pkg/metrics"
)

// RegisterMovementUseCase registra movimientos de stock (entrada/saida) de
// forma transaccional: el asiento en stock_movements y la actualización de
// products.current_stock se confirman juntos o no se confirman.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegisterMovement valida la petición, bloquea la fila del producto
// (SELECT FOR UPDATE), captura previous/new stock y persiste ambas escrituras
// en una transacción. Una saída que dejaría el stock negativo falla con
// ErrInsufficientStock sin escribir nada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		_ repository.GroupRepository,
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.CurrentStock
		var newStock decimal.Decimal
		if in.Type == entity.MovementTypeEntrada {
			newStock = previous.Add(in.Quantity)
		} else {
			newStock = previous.Sub(in.Quantity)
		}
		if newStock.IsNegative() {
			return domain.ErrInsufficientStock
		}

		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      newStock,
			Company:       in.Company,
			Notes:         in.Notes,
			CreatedAt:     time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.MovementsRecorded.WithLabelValues(created.Type).Inc()
	return toMovementResponse(created), nil
}

// ListMovements lista movimientos según filtro, más recientes primero.
func (uc *RegisterMovementUseCase) ListMovements(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	movements, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Company:       m.Company,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
