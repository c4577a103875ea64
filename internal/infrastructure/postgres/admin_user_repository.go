package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.AdminUserRepository = (*AdminUserRepo)(nil)

// AdminUserRepo implementación de AdminUserRepository (usable con pool o tx).
// No expone Delete: los administradores solo se desactivan con is_banned.
type AdminUserRepo struct {
	q Querier
}

// NewAdminUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminUserRepository(q Querier) *AdminUserRepo {
	return &AdminUserRepo{q: q}
}

const adminUserColumns = `
	id, id_company, id_sub_role, name, first_name, email, phone,
	profile_picture_url, password, is_banned, created_at, updated_at`

// Create persiste un administrador y escribe el ID generado.
func (r *AdminUserRepo) Create(user *entity.AdminUser) error {
	query := `
		INSERT INTO admin_user (id_company, id_sub_role, name, first_name, email,
			phone, profile_picture_url, password, is_banned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.CompanyID, user.SubRoleID, user.Name, user.FirstName, user.Email,
		user.Phone, user.ProfilePictureURL, user.PasswordHash, user.IsBanned,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}

// GetByID obtiene un administrador por ID.
func (r *AdminUserRepo) GetByID(id int64) (*entity.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_user WHERE id = $1`
	var u entity.AdminUser
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.CompanyID, &u.SubRoleID, &u.Name, &u.FirstName, &u.Email, &u.Phone,
		&u.ProfilePictureURL, &u.PasswordHash, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un administrador por email.
func (r *AdminUserRepo) GetByEmail(email string) (*entity.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_user WHERE email = $1`
	var u entity.AdminUser
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.CompanyID, &u.SubRoleID, &u.Name, &u.FirstName, &u.Email, &u.Phone,
		&u.ProfilePictureURL, &u.PasswordHash, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user by email: %w", err)
	}
	return &u, nil
}

// Update actualiza un administrador existente.
func (r *AdminUserRepo) Update(user *entity.AdminUser) error {
	query := `
		UPDATE admin_user SET id_sub_role = $2, name = $3, first_name = $4, phone = $5,
			profile_picture_url = $6, password = $7, is_banned = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.SubRoleID, user.Name, user.FirstName, user.Phone,
		user.ProfilePictureURL, user.PasswordHash, user.IsBanned, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update admin user: %w", err)
	}
	return nil
}

// List devuelve los administradores de una empresa con paginación.
func (r *AdminUserRepo) List(companyID int64, limit, offset int) ([]*entity.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_user
		WHERE id_company = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	var list []*entity.AdminUser
	for rows.Next() {
		var u entity.AdminUser
		if err := rows.Scan(
			&u.ID, &u.CompanyID, &u.SubRoleID, &u.Name, &u.FirstName, &u.Email, &u.Phone,
			&u.ProfilePictureURL, &u.PasswordHash, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan admin user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
