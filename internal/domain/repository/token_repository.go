package repository

import (
	"time"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
)

// AccessTokenRepository puerto de persistencia para tokens opacos.
// Delete revoca exactamente una fila (el token presentado), nunca todos los
// tokens de la identidad: las sesiones multi-dispositivo sobreviven.
type AccessTokenRepository interface {
	// Create persiste el token y escribe el ID generado en t.ID.
	Create(t *entity.AccessToken) error
	GetByID(id int64) (*entity.AccessToken, error)
	Delete(id int64) error
	TouchLastUsed(id int64, at time.Time) error
}
