package memory

import (
	"github.com/shopspring/decimal"

	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

var (
	_ repository.GroupRepository    = (*groupRepo)(nil)
	_ repository.ProductRepository  = (*productRepo)(nil)
	_ repository.MovementRepository = (*movementRepo)(nil)
	_ repository.UserRepository     = (*userRepo)(nil)
)

// Los adaptadores con lock=false se usan dentro de Run, donde el Store ya
// sostiene el lock de escritura.

type groupRepo struct {
	s    *Store
	lock bool
}

func (r *groupRepo) Create(group *entity.ProductGroup) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.addGroup(group)
}

func (r *groupRepo) GetByID(id string) (*entity.ProductGroup, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getGroup(id), nil
}

func (r *groupRepo) List() ([]*entity.ProductGroup, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.listGroups(), nil
}

func (r *groupRepo) Delete(id string) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.deleteGroup(id)
	return nil
}

type productRepo struct {
	s    *Store
	lock bool
}

func (r *productRepo) Create(product *entity.Product) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.addProduct(product)
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getProduct(id), nil
}

// GetForUpdate equivale a GetByID: dentro de Run el lock de escritura ya
// excluye a cualquier otro escritor.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getProduct(id), nil
}

func (r *productRepo) GetByCode(code string) (*entity.Product, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getProductByCode(code), nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.listProducts(""), nil
}

func (r *productRepo) ListByGroup(groupID string) ([]*entity.Product, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.listProducts(groupID), nil
}

func (r *productRepo) Update(product *entity.Product) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.updateProduct(product)
}

func (r *productRepo) UpdateStock(id string, newStock decimal.Decimal) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.updateProductStock(id, newStock)
}

func (r *productRepo) Delete(id string) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.deleteProduct(id)
	return nil
}

func (r *productRepo) DeleteByGroup(groupID string) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.deleteProductsByGroup(groupID)
	return nil
}

type movementRepo struct {
	s    *Store
	lock bool
}

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.addMovement(movement)
	return nil
}

func (r *movementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.listMovements(filter), nil
}

func (r *movementRepo) DeleteByProduct(productID string) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.deleteMovementsByProduct(productID)
	return nil
}

func (r *movementRepo) DeleteByGroup(groupID string) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.deleteMovementsByGroup(groupID)
	return nil
}

type userRepo struct {
	s    *Store
	lock bool
}

func (r *userRepo) Create(user *entity.User) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.addUser(user)
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getUser(id), nil
}

func (r *userRepo) GetByEmail(email string) (*entity.User, error) {
	if r.lock {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getUserByEmail(email), nil
}
