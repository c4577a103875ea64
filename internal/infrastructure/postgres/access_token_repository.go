package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.AccessTokenRepository = (*AccessTokenRepo)(nil)

// AccessTokenRepo implementación de AccessTokenRepository sobre la tabla
// personal_access_token. Guarda solo el hash SHA-256 del secreto.
type AccessTokenRepo struct {
	q Querier
}

// NewAccessTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccessTokenRepository(q Querier) *AccessTokenRepo {
	return &AccessTokenRepo{q: q}
}

// Create persiste el token y escribe el ID generado.
func (r *AccessTokenRepo) Create(t *entity.AccessToken) error {
	query := `
		INSERT INTO personal_access_token (tokenable_type, tokenable_id, name, token, created_at, last_used_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.UserType, t.UserID, t.Name, t.TokenHash, t.CreatedAt, t.LastUsedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert access token: %w", err)
	}
	return nil
}

// GetByID obtiene un token por ID.
func (r *AccessTokenRepo) GetByID(id int64) (*entity.AccessToken, error) {
	query := `
		SELECT id, tokenable_type, tokenable_id, name, token, created_at, last_used_at
		FROM personal_access_token WHERE id = $1`
	var t entity.AccessToken
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UserType, &t.UserID, &t.Name, &t.TokenHash, &t.CreatedAt, &t.LastUsedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access token: %w", err)
	}
	return &t, nil
}

// Delete revoca exactamente una fila; las demás sesiones de la identidad sobreviven.
func (r *AccessTokenRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM personal_access_token WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete access token: %w", err)
	}
	return nil
}

// TouchLastUsed registra el uso del token (best-effort, el guard ignora el error).
func (r *AccessTokenRepo) TouchLastUsed(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE personal_access_token SET last_used_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch access token: %w", err)
	}
	return nil
}
