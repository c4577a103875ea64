package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.SubRoleRepository = (*SubRoleRepo)(nil)

// SubRoleRepo catálogo de sub-roles de administradores (solo lectura).
type SubRoleRepo struct {
	q Querier
}

// NewSubRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubRoleRepository(q Querier) *SubRoleRepo {
	return &SubRoleRepo{q: q}
}

// GetByLabel obtiene un sub-rol por su etiqueta (ej. "owner").
func (r *SubRoleRepo) GetByLabel(label string) (*entity.SubRole, error) {
	var s entity.SubRole
	err := r.q.QueryRow(context.Background(),
		`SELECT id, label FROM sub_role WHERE label = $1`, label,
	).Scan(&s.ID, &s.Label)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub role by label: %w", err)
	}
	return &s, nil
}

// GetByID obtiene un sub-rol por ID.
func (r *SubRoleRepo) GetByID(id int64) (*entity.SubRole, error) {
	var s entity.SubRole
	err := r.q.QueryRow(context.Background(),
		`SELECT id, label FROM sub_role WHERE id = $1`, id,
	).Scan(&s.ID, &s.Label)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub role: %w", err)
	}
	return &s, nil
}
