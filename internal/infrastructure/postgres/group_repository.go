package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL (usable con pool o tx).
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Create persiste un nuevo grupo.
func (r *GroupRepo) Create(group *entity.ProductGroup) error {
	query := `
		INSERT INTO product_groups (id, name, description, color, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.Name, group.Description, group.Color, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID.
func (r *GroupRepo) GetByID(id string) (*entity.ProductGroup, error) {
	query := `
		SELECT id, name, description, color, created_at
		FROM product_groups WHERE id = $1`
	var g entity.ProductGroup
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Name, &g.Description, &g.Color, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// List lista todos los grupos, más recientes primero.
func (r *GroupRepo) List() ([]*entity.ProductGroup, error) {
	query := `
		SELECT id, name, description, color, created_at
		FROM product_groups ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductGroup
	for rows.Next() {
		var g entity.ProductGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Color, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Delete elimina un grupo por ID. La cascada la orquesta el caso de uso.
func (r *GroupRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}
