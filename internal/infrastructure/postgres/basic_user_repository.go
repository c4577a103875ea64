package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.BasicUserRepository = (*BasicUserRepo)(nil)

// BasicUserRepo implementación de BasicUserRepository (usable con pool o tx).
type BasicUserRepo struct {
	q Querier
}

// NewBasicUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBasicUserRepository(q Querier) *BasicUserRepo {
	return &BasicUserRepo{q: q}
}

const basicUserColumns = `
	id, id_company, name, first_name, email, phone, profile_picture_url, password,
	address_line, city, state, postal_code, country, is_banned, created_at, updated_at`

// Create persiste un usuario domiciliado y escribe el ID generado.
func (r *BasicUserRepo) Create(user *entity.BasicUser) error {
	query := `
		INSERT INTO basic_user (id_company, name, first_name, email, phone,
			profile_picture_url, password, address_line, city, state, postal_code,
			country, is_banned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.CompanyID, user.Name, user.FirstName, user.Email, user.Phone,
		user.ProfilePictureURL, user.PasswordHash, user.AddressLine, user.City,
		user.State, user.PostalCode, user.Country, user.IsBanned,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert basic user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *BasicUserRepo) GetByID(id int64) (*entity.BasicUser, error) {
	query := `SELECT ` + basicUserColumns + ` FROM basic_user WHERE id = $1`
	var u entity.BasicUser
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.FirstName, &u.Email, &u.Phone,
		&u.ProfilePictureURL, &u.PasswordHash, &u.AddressLine, &u.City, &u.State,
		&u.PostalCode, &u.Country, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get basic user: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *BasicUserRepo) GetByEmail(email string) (*entity.BasicUser, error) {
	query := `SELECT ` + basicUserColumns + ` FROM basic_user WHERE email = $1`
	var u entity.BasicUser
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.FirstName, &u.Email, &u.Phone,
		&u.ProfilePictureURL, &u.PasswordHash, &u.AddressLine, &u.City, &u.State,
		&u.PostalCode, &u.Country, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get basic user by email: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario existente (el email no cambia).
func (r *BasicUserRepo) Update(user *entity.BasicUser) error {
	query := `
		UPDATE basic_user SET name = $2, first_name = $3, phone = $4,
			profile_picture_url = $5, password = $6, address_line = $7, city = $8,
			state = $9, postal_code = $10, country = $11, is_banned = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.FirstName, user.Phone,
		user.ProfilePictureURL, user.PasswordHash, user.AddressLine, user.City,
		user.State, user.PostalCode, user.Country, user.IsBanned, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update basic user: %w", err)
	}
	return nil
}

// List devuelve los usuarios de una empresa con paginación.
func (r *BasicUserRepo) List(companyID int64, limit, offset int) ([]*entity.BasicUser, error) {
	query := `SELECT ` + basicUserColumns + ` FROM basic_user
		WHERE id_company = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list basic users: %w", err)
	}
	defer rows.Close()

	var list []*entity.BasicUser
	for rows.Next() {
		var u entity.BasicUser
		if err := rows.Scan(
			&u.ID, &u.CompanyID, &u.Name, &u.FirstName, &u.Email, &u.Phone,
			&u.ProfilePictureURL, &u.PasswordHash, &u.AddressLine, &u.City, &u.State,
			&u.PostalCode, &u.Country, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan basic user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina físicamente un usuario por ID.
func (r *BasicUserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM basic_user WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete basic user: %w", err)
	}
	return nil
}
