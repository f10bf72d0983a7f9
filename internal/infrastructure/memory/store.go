// Package memory implementa los puertos de persistencia sobre memoria.
// Es el backend del modo demo offline (APP_ENV=demo, sembrado con la planilla
// de ejemplo) y de los tests. Mismo contrato que el adaptador PostgreSQL,
// incluida la atomicidad del TxRunner.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/application/inventory"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store contenedor de las colecciones en memoria.
// Las mutaciones multi-paso van por Run, que restaura el estado previo si el
// callback falla: el caller nunca observa una cascada a medias.
type Store struct {
	mu        sync.RWMutex
	groups    []entity.ProductGroup
	products  []entity.Product
	movements []entity.StockMovement
	users     []entity.User
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Groups devuelve el adaptador GroupRepository.
func (s *Store) Groups() repository.GroupRepository { return &groupRepo{s: s, lock: true} }

// Products devuelve el adaptador ProductRepository.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s, lock: true} }

// Movements devuelve el adaptador MovementRepository.
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s, lock: true} }

// Users devuelve el adaptador UserRepository.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s, lock: true} }

// Run ejecuta fn bajo el lock de escritura con repos sin lock propio.
// Si fn falla se restaura el snapshot previo completo.
func (s *Store) Run(ctx context.Context, fn func(
	groupRepo repository.GroupRepository,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	snapGroups := snapshotGroups(s.groups)
	snapProducts := snapshotProducts(s.products)
	snapMovements := snapshotMovements(s.movements)

	err := fn(&groupRepo{s: s}, &productRepo{s: s}, &movementRepo{s: s})
	if err != nil {
		s.groups = snapGroups
		s.products = snapProducts
		s.movements = snapMovements
		return err
	}
	return nil
}

// ── Snapshots (copias profundas) ─────────────────────────────────────────────

func snapshotGroups(in []entity.ProductGroup) []entity.ProductGroup {
	out := make([]entity.ProductGroup, len(in))
	copy(out, in)
	return out
}

func snapshotProducts(in []entity.Product) []entity.Product {
	out := make([]entity.Product, len(in))
	for i, p := range in {
		out[i] = p
		if p.MinStock != nil {
			v := *p.MinStock
			out[i].MinStock = &v
		}
	}
	return out
}

func snapshotMovements(in []entity.StockMovement) []entity.StockMovement {
	out := make([]entity.StockMovement, len(in))
	copy(out, in)
	return out
}

func copyProduct(p entity.Product) *entity.Product {
	out := p
	if p.MinStock != nil {
		v := *p.MinStock
		out.MinStock = &v
	}
	return &out
}

// ── Operaciones internas (el caller sostiene el lock) ────────────────────────

func (s *Store) addGroup(g *entity.ProductGroup) error {
	s.groups = append(s.groups, *g)
	return nil
}

func (s *Store) getGroup(id string) *entity.ProductGroup {
	for i := range s.groups {
		if s.groups[i].ID == id {
			g := s.groups[i]
			return &g
		}
	}
	return nil
}

func (s *Store) listGroups() []*entity.ProductGroup {
	// Más recientes primero: el alta siempre hace append.
	out := make([]*entity.ProductGroup, 0, len(s.groups))
	for i := len(s.groups) - 1; i >= 0; i-- {
		g := s.groups[i]
		out = append(out, &g)
	}
	return out
}

func (s *Store) deleteGroup(id string) {
	for i := range s.groups {
		if s.groups[i].ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return
		}
	}
}

func (s *Store) addProduct(p *entity.Product) error {
	for i := range s.products {
		if strings.EqualFold(s.products[i].Code, p.Code) {
			return domain.ErrDuplicateCode
		}
	}
	s.products = append(s.products, *copyProduct(*p))
	return nil
}

func (s *Store) getProduct(id string) *entity.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return copyProduct(s.products[i])
		}
	}
	return nil
}

func (s *Store) getProductByCode(code string) *entity.Product {
	for i := range s.products {
		if strings.EqualFold(s.products[i].Code, code) {
			return copyProduct(s.products[i])
		}
	}
	return nil
}

func (s *Store) listProducts(groupID string) []*entity.Product {
	out := make([]*entity.Product, 0, len(s.products))
	for i := len(s.products) - 1; i >= 0; i-- {
		if groupID != "" && s.products[i].GroupID != groupID {
			continue
		}
		out = append(out, copyProduct(s.products[i]))
	}
	return out
}

func (s *Store) updateProduct(p *entity.Product) error {
	for i := range s.products {
		if s.products[i].ID != p.ID && strings.EqualFold(s.products[i].Code, p.Code) {
			return domain.ErrDuplicateCode
		}
	}
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = *copyProduct(*p)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) updateProductStock(id string, newStock decimal.Decimal) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].CurrentStock = newStock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) deleteProduct(id string) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

func (s *Store) deleteProductsByGroup(groupID string) {
	kept := s.products[:0]
	for _, p := range s.products {
		if p.GroupID != groupID {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

func (s *Store) addMovement(m *entity.StockMovement) {
	s.movements = append(s.movements, *m)
}

func (s *Store) listMovements(filter repository.MovementFilter) []*entity.StockMovement {
	var groupProducts map[string]struct{}
	if filter.GroupID != "" {
		groupProducts = make(map[string]struct{})
		for i := range s.products {
			if s.products[i].GroupID == filter.GroupID {
				groupProducts[s.products[i].ID] = struct{}{}
			}
		}
	}

	var out []*entity.StockMovement
	for i := range s.movements {
		m := s.movements[i]
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		if groupProducts != nil {
			if _, ok := groupProducts[m.ProductID]; !ok {
				continue
			}
		}
		mv := m
		out = append(out, &mv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}

func (s *Store) deleteMovementsByProduct(productID string) {
	kept := s.movements[:0]
	for _, m := range s.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	s.movements = kept
}

func (s *Store) deleteMovementsByGroup(groupID string) {
	ids := make(map[string]struct{})
	for i := range s.products {
		if s.products[i].GroupID == groupID {
			ids[s.products[i].ID] = struct{}{}
		}
	}
	kept := s.movements[:0]
	for _, m := range s.movements {
		if _, ok := ids[m.ProductID]; !ok {
			kept = append(kept, m)
		}
	}
	s.movements = kept
}

func (s *Store) addUser(u *entity.User) error {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) getUser(id string) *entity.User {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

func (s *Store) getUserByEmail(email string) *entity.User {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}
