// Package analytics contiene los casos de uso read-only del dashboard.
// Todas las agregaciones son folds puros sobre el snapshot vigente de las
// colecciones: no hay estado propio ni caché, cada llamada recomputa.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	domaininv "github.com/nutrimilho/estoque-api/internal/domain/inventory"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

const (
	recentMovementsLimit = 10
	groupChartTopN       = 6
)

// DashboardUseCase arma los resúmenes del dashboard global y por grupo.
type DashboardUseCase struct {
	groupRepo   repository.GroupRepository
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	groupRepo repository.GroupRepository,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{groupRepo: groupRepo, productRepo: productRepo, movRepo: movRepo}
}

// GetStats devuelve los KPIs globales del inventario.
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStatsDTO, error) {
	groups, products, movements, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	recent := movements
	if len(recent) > recentMovementsLimit {
		recent = recent[:recentMovementsLimit]
	}
	recentItems := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		recentItems = append(recentItems, dto.MovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			PreviousStock: m.PreviousStock,
			NewStock:      m.NewStock,
			Company:       m.Company,
			Notes:         m.Notes,
			CreatedAt:     m.CreatedAt,
		})
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:   len(products),
		TotalGroups:     len(groups),
		TotalStock:      TotalStock(products),
		TotalEntries:    SumQuantity(movements, entity.MovementTypeEntrada),
		TotalExits:      SumQuantity(movements, entity.MovementTypeSaida),
		LowStockCount:   LowStockCount(products),
		RecentMovements: recentItems,
	}, nil
}

// GetGroupRollups devuelve el resumen por grupo (productos, totales,
// entradas/salidas y el top-6 para el gráfico).
func (uc *DashboardUseCase) GetGroupRollups() ([]dto.GroupRollupDTO, error) {
	groups, products, movements, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	rollups := make([]dto.GroupRollupDTO, 0, len(groups))
	for _, g := range groups {
		groupProducts := filterByGroup(products, g.ID)
		groupMovements := filterMovementsByProducts(movements, groupProducts)

		items := make([]dto.ProductResponse, 0, len(groupProducts))
		for _, p := range groupProducts {
			items = append(items, toProductResponse(p))
		}

		rollups = append(rollups, dto.GroupRollupDTO{
			GroupID:       g.ID,
			GroupName:     g.Name,
			GroupColor:    g.Color,
			Products:      items,
			TotalStock:    TotalStock(groupProducts),
			LowStockCount: LowStockCount(groupProducts),
			Entries:       SumQuantity(groupMovements, entity.MovementTypeEntrada),
			Exits:         SumQuantity(groupMovements, entity.MovementTypeSaida),
			ChartData:     chartData(groupProducts, groupChartTopN),
		})
	}
	return rollups, nil
}

func (uc *DashboardUseCase) snapshot() ([]*entity.ProductGroup, []*entity.Product, []*entity.StockMovement, error) {
	groups, err := uc.groupRepo.List()
	if err != nil {
		return nil, nil, nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, nil, nil, err
	}
	movements, err := uc.movRepo.List(repository.MovementFilter{})
	if err != nil {
		return nil, nil, nil, err
	}
	return groups, products, movements, nil
}

// ── Folds puros ───────────────────────────────────────────────────────────────

// TotalStock suma CurrentStock de todos los productos.
func TotalStock(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.CurrentStock)
	}
	return total
}

// LowStockCount cuenta productos con umbral configurado y stock por debajo
// del mínimo. Comparación estricta (<): el producto exactamente en el mínimo
// no cuenta aquí, aunque sí genera alerta (<=) en el evaluador.
func LowStockCount(products []*entity.Product) int {
	count := 0
	for _, p := range products {
		if p.MinStock != nil && p.CurrentStock.LessThan(*p.MinStock) {
			count++
		}
	}
	return count
}

// SumQuantity suma la cantidad de los movimientos del tipo dado.
func SumQuantity(movements []*entity.StockMovement, movType string) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.Type == movType {
			total = total.Add(m.Quantity)
		}
	}
	return total
}

// TopByStock devuelve los n productos con más stock, de mayor a menor.
// Orden estable: a igualdad de stock se conserva el orden de la colección.
func TopByStock(products []*entity.Product, n int) []*entity.Product {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CurrentStock.GreaterThan(sorted[j].CurrentStock)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func chartData(products []*entity.Product, n int) []dto.ChartPointDTO {
	top := TopByStock(products, n)
	points := make([]dto.ChartPointDTO, 0, len(top))
	for _, p := range top {
		min := decimal.Zero
		if p.MinStock != nil {
			min = *p.MinStock
		}
		points = append(points, dto.ChartPointDTO{
			Name:     p.Name,
			Stock:    p.CurrentStock,
			MinStock: min,
		})
	}
	return points
}

func filterByGroup(products []*entity.Product, groupID string) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out
}

func filterMovementsByProducts(movements []*entity.StockMovement, products []*entity.Product) []*entity.StockMovement {
	ids := make(map[string]struct{}, len(products))
	for _, p := range products {
		ids[p.ID] = struct{}{}
	}
	var out []*entity.StockMovement
	for _, m := range movements {
		if _, ok := ids[m.ProductID]; ok {
			out = append(out, m)
		}
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	var min *decimal.Decimal
	if p.MinStock != nil {
		v := *p.MinStock
		min = &v
	}
	return dto.ProductResponse{
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
