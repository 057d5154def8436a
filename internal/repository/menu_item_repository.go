package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yumyum-spot/menu-service/internal/domain"
)

// MenuItemRepository defines persistence access for menu items.
type MenuItemRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}

type menuItemRepository struct {
	pool *pgxpool.Pool
}

// NewMenuItemRepository returns a Postgres-backed implementation.
func NewMenuItemRepository(pool *pgxpool.Pool) MenuItemRepository {
	return &menuItemRepository{pool: pool}
}

func (r *menuItemRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, name, description, category, special_tag, price, image, created_at, updated_at
        FROM menu_items ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Category,
			&item.SpecialTag,
			&item.Price,
			&item.Image,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	const query = `
        SELECT id, name, description, category, special_tag, price, image, created_at, updated_at
        FROM menu_items WHERE id=$1`

	var item domain.MenuItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.SpecialTag,
		&item.Price,
		&item.Image,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (name, description, category, special_tag, price, image)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Category,
		item.SpecialTag,
		item.Price,
		item.Image,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        UPDATE menu_items
        SET name=$1, description=$2, category=$3, special_tag=$4, price=$5, image=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		item.Name,
		item.Description,
		item.Category,
		item.SpecialTag,
		item.Price,
		item.Image,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
