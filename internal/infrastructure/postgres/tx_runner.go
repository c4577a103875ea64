package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// Asegura que TxRunner implementa usecase.ThemeTxRunner.
var _ usecase.ThemeTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTheme inicia una transacción, ejecuta fn con repos de temas y empresas
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunTheme(ctx context.Context, fn func(
	themeRepo repository.ColorThemeRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	themeRepo := NewColorThemeRepository(tx)
	companyRepo := NewCompanyRepository(tx)

	if err := fn(themeRepo, companyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
