package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.VirtualOfficeRepository = (*VirtualOfficeRepo)(nil)

// VirtualOfficeRepo implementación de VirtualOfficeRepository (usable con pool o tx).
type VirtualOfficeRepo struct {
	q Querier
}

// NewVirtualOfficeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVirtualOfficeRepository(q Querier) *VirtualOfficeRepo {
	return &VirtualOfficeRepo{q: q}
}

const virtualOfficeColumns = `
	id, id_basic_user, id_category_file, name, legal_form, siret, siren, rcs, tva`

// Create persiste la sociedad domiciliada y escribe el ID generado.
func (r *VirtualOfficeRepo) Create(vo *entity.VirtualOffice) error {
	query := `
		INSERT INTO virtual_office (id_basic_user, id_category_file, name, legal_form,
			siret, siren, rcs, tva)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		vo.BasicUserID, vo.CategoryFileID, vo.Name, vo.LegalForm,
		vo.Siret, vo.Siren, vo.RCS, vo.TVA,
	).Scan(&vo.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert virtual office: %w", err)
	}
	return nil
}

// GetByID obtiene una sociedad por ID.
func (r *VirtualOfficeRepo) GetByID(id int64) (*entity.VirtualOffice, error) {
	query := `SELECT ` + virtualOfficeColumns + ` FROM virtual_office WHERE id = $1`
	var vo entity.VirtualOffice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&vo.ID, &vo.BasicUserID, &vo.CategoryFileID, &vo.Name, &vo.LegalForm,
		&vo.Siret, &vo.Siren, &vo.RCS, &vo.TVA,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get virtual office: %w", err)
	}
	return &vo, nil
}

// GetByBasicUser obtiene la sociedad de un usuario (a lo sumo una).
func (r *VirtualOfficeRepo) GetByBasicUser(basicUserID int64) (*entity.VirtualOffice, error) {
	query := `SELECT ` + virtualOfficeColumns + ` FROM virtual_office WHERE id_basic_user = $1`
	var vo entity.VirtualOffice
	err := r.q.QueryRow(context.Background(), query, basicUserID).Scan(
		&vo.ID, &vo.BasicUserID, &vo.CategoryFileID, &vo.Name, &vo.LegalForm,
		&vo.Siret, &vo.Siren, &vo.RCS, &vo.TVA,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get virtual office by user: %w", err)
	}
	return &vo, nil
}

// List devuelve sociedades con paginación.
func (r *VirtualOfficeRepo) List(limit, offset int) ([]*entity.VirtualOffice, error) {
	query := `SELECT ` + virtualOfficeColumns + ` FROM virtual_office ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list virtual offices: %w", err)
	}
	defer rows.Close()

	var list []*entity.VirtualOffice
	for rows.Next() {
		var vo entity.VirtualOffice
		if err := rows.Scan(
			&vo.ID, &vo.BasicUserID, &vo.CategoryFileID, &vo.Name, &vo.LegalForm,
			&vo.Siret, &vo.Siren, &vo.RCS, &vo.TVA,
		); err != nil {
			return nil, fmt.Errorf("scan virtual office: %w", err)
		}
		list = append(list, &vo)
	}
	return list, rows.Err()
}

// Update actualiza una sociedad existente.
func (r *VirtualOfficeRepo) Update(vo *entity.VirtualOffice) error {
	query := `
		UPDATE virtual_office SET id_category_file = $2, name = $3, legal_form = $4,
			siret = $5, siren = $6, rcs = $7, tva = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vo.ID, vo.CategoryFileID, vo.Name, vo.LegalForm,
		vo.Siret, vo.Siren, vo.RCS, vo.TVA,
	)
	if err != nil {
		return fmt.Errorf("update virtual office: %w", err)
	}
	return nil
}
