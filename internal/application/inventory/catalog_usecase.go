package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	domaininv "github.com/nutrimilho/estoque-api/internal/domain/inventory"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD para grupos y productos, incluidas las
// cascadas de borrado. Las cascadas se ejecutan como una función explícita
// dentro de una transacción, no se delega en foreign keys del backend.
type CatalogUseCase struct {
	txRunner    TxRunner
	groupRepo   repository.GroupRepository
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	txRunner TxRunner,
	groupRepo repository.GroupRepository,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		txRunner:    txRunner,
		groupRepo:   groupRepo,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// ── Grupos ────────────────────────────────────────────────────────────────────

// CreateGroup crea un grupo de productos.
func (uc *CatalogUseCase) CreateGroup(in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Color) == "" {
		return nil, domain.ErrInvalidInput
	}
	group := &entity.ProductGroup{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Color:       strings.TrimSpace(in.Color),
		CreatedAt:   time.Now(),
	}
	if err := uc.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

// ListGroups lista todos los grupos, más recientes primero.
func (uc *CatalogUseCase) ListGroups() (*dto.GroupListResponse, error) {
	groups, err := uc.groupRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, *toGroupResponse(g))
	}
	return &dto.GroupListResponse{Items: items, Total: len(items)}, nil
}

// DeleteGroup borra el grupo con cascada: todos sus productos y los
// movimientos de esos productos desaparecen en la misma transacción.
func (uc *CatalogUseCase) DeleteGroup(ctx context.Context, id string) error {
	group, err := uc.groupRepo.GetByID(id)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		groupRepo repository.GroupRepository,
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		// Orden hijo → padre para no dejar huérfanos a mitad de camino.
		if err := movRepo.DeleteByGroup(id); err != nil {
			return err
		}
		if err := productRepo.DeleteByGroup(id); err != nil {
			return err
		}
		return groupRepo.Delete(id)
	})
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProduct crea un producto con su stock inicial.
func (uc *CatalogUseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock != nil && in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	group, err := uc.groupRepo.GetByID(in.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "unidade"
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		GroupID:      in.GroupID,
		Code:         code,
		Name:         name,
		Unit:         unit,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		CreatedAt:    time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto por ID.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts lista productos; groupID vacío = todos.
func (uc *CatalogUseCase) ListProducts(groupID string) (*dto.ProductListResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	if groupID == "" {
		products, err = uc.productRepo.List()
	} else {
		products, err = uc.productRepo.ListByGroup(groupID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// UpdateProduct actualiza campos sueltos de un producto. Puede sobrescribir
// CurrentStock directamente (corrección de digitación); los cambios auditables
// de stock deben ir por RegisterMovement.
func (uc *CatalogUseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code == "" {
			return nil, domain.ErrInvalidInput
		}
		other, err := uc.productRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicateCode
		}
		product.Code = code
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.GroupID != nil {
		group, err := uc.groupRepo.GetByID(*in.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, domain.ErrInvalidInput
		}
		product.GroupID = *in.GroupID
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) != "" {
		product.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.CurrentStock != nil {
		if in.CurrentStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CurrentStock = *in.CurrentStock
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = in.MinStock
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct borra el producto y, en cascada, todos sus movimientos.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.GroupRepository,
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := movRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// ── Mapeos ────────────────────────────────────────────────────────────────────

func toGroupResponse(g *entity.ProductGroup) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Color:       g.Color,
		CreatedAt:   g.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	var min *decimal.Decimal
	if p.MinStock != nil {
		v := *p.MinStock
		min = &v
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		GroupID:      p.GroupID,
		Code:         p.Code,
		Name:         p.Name,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
		MinStock:     min,
		Status:       string(domaininv.Classify(p)),
		CreatedAt:    p.CreatedAt,
	}
}
