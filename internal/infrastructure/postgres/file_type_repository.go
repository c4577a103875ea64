package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.FileTypeRepository = (*FileTypeRepo)(nil)

// FileTypeRepo tipos de documento de domiciliación por empresa (usable con
// pool o tx). Sin borrado físico: se archivan con is_archived.
type FileTypeRepo struct {
	q Querier
}

// NewFileTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFileTypeRepository(q Querier) *FileTypeRepo {
	return &FileTypeRepo{q: q}
}

const fileTypeColumns = `
	id, id_company, id_category_file, label, description, is_archived`

// Create persiste un tipo de documento y escribe el ID generado.
func (r *FileTypeRepo) Create(t *entity.DomiciliationFileType) error {
	query := `
		INSERT INTO domiciliation_file_type (id_company, id_category_file, label, description, is_archived)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.CompanyID, t.CategoryFileID, t.Label, t.Description, t.IsArchived,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert file type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de documento por ID.
func (r *FileTypeRepo) GetByID(id int64) (*entity.DomiciliationFileType, error) {
	query := `SELECT ` + fileTypeColumns + ` FROM domiciliation_file_type WHERE id = $1`
	var t entity.DomiciliationFileType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.CategoryFileID, &t.Label, &t.Description, &t.IsArchived,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get file type: %w", err)
	}
	return &t, nil
}

// List devuelve tipos de documento, opcionalmente por empresa. Los archivados
// solo entran con includeArchived.
func (r *FileTypeRepo) List(companyID *int64, includeArchived bool) ([]*entity.DomiciliationFileType, error) {
	query := `SELECT ` + fileTypeColumns + ` FROM domiciliation_file_type`
	var args []any
	var where []string
	if companyID != nil {
		args = append(args, *companyID)
		where = append(where, `id_company = $`+strconv.Itoa(len(args)))
	}
	if !includeArchived {
		where = append(where, `is_archived = false`)
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list file types: %w", err)
	}
	defer rows.Close()

	var list []*entity.DomiciliationFileType
	for rows.Next() {
		var t entity.DomiciliationFileType
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.CategoryFileID, &t.Label, &t.Description, &t.IsArchived,
		); err != nil {
			return nil, fmt.Errorf("scan file type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de documento existente (incluye archivado).
func (r *FileTypeRepo) Update(t *entity.DomiciliationFileType) error {
	query := `
		UPDATE domiciliation_file_type SET id_category_file = $2, label = $3,
			description = $4, is_archived = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.CategoryFileID, t.Label, t.Description, t.IsArchived,
	)
	if err != nil {
		return fmt.Errorf("update file type: %w", err)
	}
	return nil
}
