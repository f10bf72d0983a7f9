// Package alerts mantiene el conjunto derivado de alertas de estoque baixo.
// Las alertas no se persisten: se recalculan desde el snapshot de productos en
// cada refresh. Lo único que sobrevive entre refresh es el flag de leída,
// anclado al ID determinista de la alerta.
package alerts

import (
	"context"
	"sync"
	"time"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	domaininv "github.com/nutrimilho/estoque-api/internal/domain/inventory"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
	"github.com/nutrimilho/estoque-api/pkg/logger"
	"github.com/nutrimilho/estoque-api/pkg/metrics"
)

// Fallbacks cuando el grupo del producto ya no existe.
const (
	fallbackGroupName  = "Sem grupo"
	fallbackGroupColor = "#888888"
)

// Evaluator recalcula las alertas de estoque baixo y conserva el estado de
// lectura entre recomputaciones. Seguro para uso concurrente; los refresh se
// serializan con el mutex.
type Evaluator struct {
	productRepo repository.ProductRepository
	groupRepo   repository.GroupRepository
	notifier    Notifier
	log         *logger.Logger

	mu     sync.Mutex
	alerts []entity.LowStockAlert
}

// NewEvaluator construye el evaluador. notifier puede ser nil (sin despacho).
func NewEvaluator(
	productRepo repository.ProductRepository,
	groupRepo repository.GroupRepository,
	notifier Notifier,
	log *logger.Logger,
) *Evaluator {
	return &Evaluator{
		productRepo: productRepo,
		groupRepo:   groupRepo,
		notifier:    notifier,
		log:         log,
	}
}

// Refresh recomputa el conjunto de alertas desde el snapshot de productos:
//  1. candidatos = productos con MinStock configurado y CurrentStock <= MinStock
//  2. cada candidato mapea a un ID determinista ("alert-<productID>")
//  3. IsRead se arrastra solo para IDs que siguen presentes; las alertas que
//     reaparecen tras salir del conjunto vuelven como no leídas
//  4. la lista se reemplaza al completo; los IDs nuevos respecto al snapshot
//     en memoria anterior se despachan al notificador (best-effort)
func (e *Evaluator) Refresh(ctx context.Context) error {
	_ = ctx

	products, err := e.productRepo.List()
	if err != nil {
		return err
	}
	groups, err := e.groupRepo.List()
	if err != nil {
		return err
	}
	groupsByID := make(map[string]*entity.ProductGroup, len(groups))
	for _, g := range groups {
		groupsByID[g.ID] = g
	}

	now := time.Now()
	fresh := make([]entity.LowStockAlert, 0)
	for _, p := range products {
		if !domaininv.IsLowForAlert(p) {
			continue
		}
		groupName, groupColor := fallbackGroupName, fallbackGroupColor
		if g, ok := groupsByID[p.GroupID]; ok {
			groupName, groupColor = g.Name, g.Color
		}
		fresh = append(fresh, entity.LowStockAlert{
			ID:           entity.AlertIDFor(p.ID),
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductCode:  p.Code,
			CurrentStock: p.CurrentStock,
			MinStock:     *p.MinStock,
			GroupName:    groupName,
			GroupColor:   groupColor,
			CreatedAt:    now,
			IsRead:       false,
		})
	}

	e.mu.Lock()
	previousIDs := make(map[string]struct{}, len(e.alerts))
	readIDs := make(map[string]struct{})
	for _, a := range e.alerts {
		previousIDs[a.ID] = struct{}{}
		if a.IsRead {
			readIDs[a.ID] = struct{}{}
		}
	}
	var appeared []entity.LowStockAlert
	for i := range fresh {
		if _, ok := readIDs[fresh[i].ID]; ok {
			fresh[i].IsRead = true
		}
		if _, ok := previousIDs[fresh[i].ID]; !ok {
			appeared = append(appeared, fresh[i])
		}
	}
	e.alerts = fresh
	e.mu.Unlock()

	metrics.AlertRefreshes.Inc()
	if len(appeared) > 0 {
		e.dispatch(appeared)
	}
	return nil
}

// dispatch envía las alertas nuevas al notificador en una goroutine aparte:
// la entrega jamás bloquea ni hace fallar el refresh.
func (e *Evaluator) dispatch(appeared []entity.LowStockAlert) {
	if e.notifier == nil {
		return
	}
	go func(batch []entity.LowStockAlert) {
		defer func() {
			if r := recover(); r != nil && e.log != nil {
				e.log.Warn().Interface("panic", r).Msg("notificador de alertas en pánico")
			}
		}()
		for _, a := range batch {
			if err := e.notifier.NotifyLowStock(a.ProductName, a.CurrentStock, a.MinStock); err != nil {
				if e.log != nil {
					e.log.Warn().Err(err).Str("product", a.ProductCode).Msg("notificación de estoque baixo descartada")
				}
				continue
			}
			metrics.AlertsDispatched.Inc()
		}
	}(appeared)
}

// Alerts devuelve una copia del conjunto vigente de alertas.
func (e *Evaluator) Alerts() []entity.LowStockAlert {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]entity.LowStockAlert, len(e.alerts))
	copy(out, e.alerts)
	return out
}

// MarkAsRead marca una alerta como leída; no-op si el ID no está presente.
func (e *Evaluator) MarkAsRead(alertID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.alerts {
		if e.alerts[i].ID == alertID {
			e.alerts[i].IsRead = true
			return
		}
	}
}

// MarkAllAsRead marca todas las alertas vigentes como leídas.
func (e *Evaluator) MarkAllAsRead() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.alerts {
		e.alerts[i].IsRead = true
	}
}

// UnreadCount cuenta las alertas no leídas.
func (e *Evaluator) UnreadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	count := 0
	for _, a := range e.alerts {
		if !a.IsRead {
			count++
		}
	}
	return count
}

// ToListResponse arma la respuesta HTTP del listado de alertas.
func (e *Evaluator) ToListResponse() *dto.AlertListResponse {
	alerts := e.Alerts()
	items := make([]dto.AlertResponse, 0, len(alerts))
	unread := 0
	for _, a := range alerts {
		if !a.IsRead {
			unread++
		}
		items = append(items, dto.AlertResponse{
			ID:           a.ID,
			ProductID:    a.ProductID,
			ProductName:  a.ProductName,
			ProductCode:  a.ProductCode,
			CurrentStock: a.CurrentStock,
			MinStock:     a.MinStock,
			GroupName:    a.GroupName,
			GroupColor:   a.GroupColor,
			CreatedAt:    a.CreatedAt,
			IsRead:       a.IsRead,
		})
	}
	return &dto.AlertListResponse{Items: items, UnreadCount: unread}
}
