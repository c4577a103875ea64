package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.SupportingFileRepository = (*SupportingFileRepo)(nil)

// SupportingFileRepo justificantes aportados por los usuarios (usable con pool o tx).
type SupportingFileRepo struct {
	q Querier
}

// NewSupportingFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupportingFileRepository(q Querier) *SupportingFileRepo {
	return &SupportingFileRepo{q: q}
}

const supportingFileColumns = `
	id, id_basic_user, id_file_type, note, file_url, is_validate, validate_at, created_at`

// Create persiste un justificante y escribe el ID generado.
func (r *SupportingFileRepo) Create(f *entity.SupportingFile) error {
	query := `
		INSERT INTO supporting_file (id_basic_user, id_file_type, note, file_url,
			is_validate, validate_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		f.BasicUserID, f.FileTypeID, f.Note, f.FileURL,
		f.IsValidate, f.ValidateAt, f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert supporting file: %w", err)
	}
	return nil
}

// GetByID obtiene un justificante por ID.
func (r *SupportingFileRepo) GetByID(id int64) (*entity.SupportingFile, error) {
	query := `SELECT ` + supportingFileColumns + ` FROM supporting_file WHERE id = $1`
	var f entity.SupportingFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.BasicUserID, &f.FileTypeID, &f.Note, &f.FileURL,
		&f.IsValidate, &f.ValidateAt, &f.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supporting file: %w", err)
	}
	return &f, nil
}

// List devuelve justificantes, opcionalmente filtrados por usuario.
func (r *SupportingFileRepo) List(basicUserID *int64) ([]*entity.SupportingFile, error) {
	query := `SELECT ` + supportingFileColumns + ` FROM supporting_file`
	var args []any
	if basicUserID != nil {
		query += ` WHERE id_basic_user = $1`
		args = append(args, *basicUserID)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supporting files: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupportingFile
	for rows.Next() {
		var f entity.SupportingFile
		if err := rows.Scan(
			&f.ID, &f.BasicUserID, &f.FileTypeID, &f.Note, &f.FileURL,
			&f.IsValidate, &f.ValidateAt, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supporting file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza un justificante existente.
func (r *SupportingFileRepo) Update(f *entity.SupportingFile) error {
	query := `
		UPDATE supporting_file SET id_file_type = $2, note = $3, file_url = $4,
			is_validate = $5, validate_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.FileTypeID, f.Note, f.FileURL, f.IsValidate, f.ValidateAt,
	)
	if err != nil {
		return fmt.Errorf("update supporting file: %w", err)
	}
	return nil
}

// Delete elimina un justificante por ID.
func (r *SupportingFileRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM supporting_file WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supporting file: %w", err)
	}
	return nil
}
