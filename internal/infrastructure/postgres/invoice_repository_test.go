package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domicilia/backoffice-api/internal/infrastructure/postgres"
)

// stubRow implementa pgx.Row devolviendo valores fijos (o un error).
type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.vals[i].(int64)
		case **string:
			if r.vals[i] == nil {
				*p = nil
			} else {
				s := r.vals[i].(string)
				*p = &s
			}
		}
	}
	return nil
}

// captureQuerier registra el SQL emitido y responde con una fila fija.
// Los repositorios aceptan Querier, así que las consultas se pueden
// verificar sin una base de datos.
type captureQuerier struct {
	sql  string
	args []any
	row  stubRow
}

func (q *captureQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *captureQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (q *captureQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func normalizarSQL(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestLatestByCompany_OrdenaPorFechaDeCreacion(t *testing.T) {
	q := &captureQuerier{row: stubRow{vals: []any{int64(42), "OF", "VO"}}}
	repo := postgres.NewInvoiceRepository(q)

	got, err := repo.LatestByCompany(7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.ReferenceNum)

	sql := normalizarSQL(q.sql)
	// La factura "más reciente" se decide por fecha de creación, no por id:
	// con filas importadas o retro-fechadas ambos órdenes divergen y la
	// numeración sugerida cambiaría de factura base.
	assert.Contains(t, sql, "ORDER BY i.created_at DESC, i.id DESC")
	assert.Contains(t, sql, "INNER JOIN virtual_office_offer o ON o.id = i.id_virtual_office_offer")
	assert.Contains(t, sql, "INNER JOIN company c ON c.id = o.id_company")
	assert.Equal(t, []any{int64(7)}, q.args)
}

func TestLatestByCompany_SinFacturas_DevuelveNil(t *testing.T) {
	q := &captureQuerier{row: stubRow{err: pgx.ErrNoRows}}
	repo := postgres.NewInvoiceRepository(q)

	got, err := repo.LatestByCompany(7)
	require.NoError(t, err)
	assert.Nil(t, got)
}
