package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.CategoryFileRepository = (*CategoryFileRepo)(nil)

// CategoryFileRepo categorías de documentos de domiciliación (usable con pool o tx).
type CategoryFileRepo struct {
	q Querier
}

// NewCategoryFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryFileRepository(q Querier) *CategoryFileRepo {
	return &CategoryFileRepo{q: q}
}

const categoryFileColumns = `
	id, category_name, category_description, label_id, label_description`

// Create persiste una categoría y escribe el ID generado.
func (r *CategoryFileRepo) Create(c *entity.CategoryFile) error {
	query := `
		INSERT INTO category_file (category_name, category_description, label_id, label_description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.CategoryName, c.CategoryDescription, c.LabelID, c.LabelDescription,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert category file: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryFileRepo) GetByID(id int64) (*entity.CategoryFile, error) {
	query := `SELECT ` + categoryFileColumns + ` FROM category_file WHERE id = $1`
	var c entity.CategoryFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CategoryName, &c.CategoryDescription, &c.LabelID, &c.LabelDescription,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category file: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías.
func (r *CategoryFileRepo) List() ([]*entity.CategoryFile, error) {
	query := `SELECT ` + categoryFileColumns + ` FROM category_file ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list category files: %w", err)
	}
	defer rows.Close()

	var list []*entity.CategoryFile
	for rows.Next() {
		var c entity.CategoryFile
		if err := rows.Scan(
			&c.ID, &c.CategoryName, &c.CategoryDescription, &c.LabelID, &c.LabelDescription,
		); err != nil {
			return nil, fmt.Errorf("scan category file: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryFileRepo) Update(c *entity.CategoryFile) error {
	query := `
		UPDATE category_file SET category_name = $2, category_description = $3,
			label_id = $4, label_description = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CategoryName, c.CategoryDescription, c.LabelID, c.LabelDescription,
	)
	if err != nil {
		return fmt.Errorf("update category file: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryFileRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM category_file WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category file: %w", err)
	}
	return nil
}
