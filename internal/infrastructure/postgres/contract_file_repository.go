package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.ContractFileRepository = (*ContractFileRepo)(nil)

// ContractFileRepo contratos de domiciliación y su estado de firma
// (usable con pool o tx).
type ContractFileRepo struct {
	q Querier
}

// NewContractFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractFileRepository(q Querier) *ContractFileRepo {
	return &ContractFileRepo{q: q}
}

const contractFileColumns = `
	id, id_company, id_basic_user, contract_file_url, compensatory_file_url,
	signed_file_url, tag, is_signed_by_user, is_signed_by_admin,
	yousign_procedure_id, yousign_signature_date, yousign_completion_date,
	signature_status, created_at`

// Create persiste un contrato y escribe el ID generado.
func (r *ContractFileRepo) Create(f *entity.ContractFile) error {
	query := `
		INSERT INTO contract_file (id_company, id_basic_user, contract_file_url,
			compensatory_file_url, signed_file_url, tag, is_signed_by_user,
			is_signed_by_admin, yousign_procedure_id, yousign_signature_date,
			yousign_completion_date, signature_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		f.CompanyID, f.BasicUserID, f.ContractFileURL, f.CompensatoryFileURL,
		f.SignedFileURL, f.Tag, f.IsSignedByUser, f.IsSignedByAdmin,
		f.YousignProcedureID, f.YousignSignatureDate, f.YousignCompletionDate,
		f.SignatureStatus, f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert contract file: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractFileRepo) GetByID(id int64) (*entity.ContractFile, error) {
	query := `SELECT ` + contractFileColumns + ` FROM contract_file WHERE id = $1`
	var f entity.ContractFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.CompanyID, &f.BasicUserID, &f.ContractFileURL, &f.CompensatoryFileURL,
		&f.SignedFileURL, &f.Tag, &f.IsSignedByUser, &f.IsSignedByAdmin,
		&f.YousignProcedureID, &f.YousignSignatureDate, &f.YousignCompletionDate,
		&f.SignatureStatus, &f.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract file: %w", err)
	}
	return &f, nil
}

// List devuelve contratos filtrados por empresa y/o usuario (ambos opcionales).
func (r *ContractFileRepo) List(companyID, basicUserID *int64) ([]*entity.ContractFile, error) {
	query := `SELECT ` + contractFileColumns + ` FROM contract_file`
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
		return nil, fmt.Errorf("list contract files: %w", err)
	}
	defer rows.Close()

	var list []*entity.ContractFile
	for rows.Next() {
		var f entity.ContractFile
		if err := rows.Scan(
			&f.ID, &f.CompanyID, &f.BasicUserID, &f.ContractFileURL, &f.CompensatoryFileURL,
			&f.SignedFileURL, &f.Tag, &f.IsSignedByUser, &f.IsSignedByAdmin,
			&f.YousignProcedureID, &f.YousignSignatureDate, &f.YousignCompletionDate,
			&f.SignatureStatus, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contract file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza un contrato existente.
func (r *ContractFileRepo) Update(f *entity.ContractFile) error {
	query := `
		UPDATE contract_file SET contract_file_url = $2, compensatory_file_url = $3,
			signed_file_url = $4, tag = $5, is_signed_by_user = $6,
			is_signed_by_admin = $7, yousign_procedure_id = $8,
			yousign_signature_date = $9, yousign_completion_date = $10,
			signature_status = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.ContractFileURL, f.CompensatoryFileURL, f.SignedFileURL, f.Tag,
		f.IsSignedByUser, f.IsSignedByAdmin, f.YousignProcedureID,
		f.YousignSignatureDate, f.YousignCompletionDate, f.SignatureStatus,
	)
	if err != nil {
		return fmt.Errorf("update contract file: %w", err)
	}
	return nil
}
