package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.ReceivedFileRepository = (*ReceivedFileRepo)(nil)

// ReceivedFileRepo metadatos del correo entrante escaneado (usable con pool o tx).
type ReceivedFileRepo struct {
	q Querier
}

// NewReceivedFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceivedFileRepository(q Querier) *ReceivedFileRepo {
	return &ReceivedFileRepo{q: q}
}

const receivedFileColumns = `
	id, id_company, id_basic_user, received_from_name, recipient_name, recipient_email,
	courriel_object, resume, status, file_url, send_at, uploaded_at, is_sent, is_archived`

// Create persiste los metadatos del correo y escribe el ID generado.
func (r *ReceivedFileRepo) Create(f *entity.ReceivedFile) error {
	query := `
		INSERT INTO received_file (id_company, id_basic_user, received_from_name,
			recipient_name, recipient_email, courriel_object, resume, status,
			file_url, send_at, uploaded_at, is_sent, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		f.CompanyID, f.BasicUserID, f.ReceivedFromName, f.RecipientName,
		f.RecipientEmail, f.CourrielObject, f.Resume, f.Status,
		f.FileURL, f.SendAt, f.UploadedAt, f.IsSent, f.IsArchived,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert received file: %w", err)
	}
	return nil
}

// GetByID obtiene un correo por ID.
func (r *ReceivedFileRepo) GetByID(id int64) (*entity.ReceivedFile, error) {
	query := `SELECT ` + receivedFileColumns + ` FROM received_file WHERE id = $1`
	var f entity.ReceivedFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.CompanyID, &f.BasicUserID, &f.ReceivedFromName, &f.RecipientName,
		&f.RecipientEmail, &f.CourrielObject, &f.Resume, &f.Status,
		&f.FileURL, &f.SendAt, &f.UploadedAt, &f.IsSent, &f.IsArchived,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get received file: %w", err)
	}
	return &f, nil
}

// List devuelve correos filtrados por empresa y/o usuario (ambos opcionales).
func (r *ReceivedFileRepo) List(companyID, basicUserID *int64) ([]*entity.ReceivedFile, error) {
	query := `SELECT ` + receivedFileColumns + ` FROM received_file`
	var args []any
	var where []string
	if companyID != nil {
		args = append(args, *companyID)
		where = append(where, `id_company = $`+strconv.Itoa(len(args)))
	}
	if basicUserID != nil {
		args = append(args, *basicUserID)
		where = append(where, `id_basic_user = $`+strconv.Itoa(len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list received files: %w", err)
	}
	defer rows.Close()

	var list []*entity.ReceivedFile
	for rows.Next() {
		var f entity.ReceivedFile
		if err := rows.Scan(
			&f.ID, &f.CompanyID, &f.BasicUserID, &f.ReceivedFromName, &f.RecipientName,
			&f.RecipientEmail, &f.CourrielObject, &f.Resume, &f.Status,
			&f.FileURL, &f.SendAt, &f.UploadedAt, &f.IsSent, &f.IsArchived,
		); err != nil {
			return nil, fmt.Errorf("scan received file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza un correo existente.
func (r *ReceivedFileRepo) Update(f *entity.ReceivedFile) error {
	query := `
		UPDATE received_file SET id_basic_user = $2, received_from_name = $3,
			recipient_name = $4, recipient_email = $5, courriel_object = $6,
			resume = $7, status = $8, file_url = $9, send_at = $10,
			uploaded_at = $11, is_sent = $12, is_archived = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.BasicUserID, f.ReceivedFromName, f.RecipientName, f.RecipientEmail,
		f.CourrielObject, f.Resume, f.Status, f.FileURL, f.SendAt,
		f.UploadedAt, f.IsSent, f.IsArchived,
	)
	if err != nil {
		return fmt.Errorf("update received file: %w", err)
	}
	return nil
}
