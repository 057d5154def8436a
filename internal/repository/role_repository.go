package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yumyum-spot/menu-service/internal/domain"
)

// ErrRoleNotFound signals an assignment against a role that was never created.
var ErrRoleNotFound = errors.New("role does not exist")

// RoleRepository defines persistence access for roles and assignments.
type RoleRepository interface {
	EnsureRole(ctx context.Context, name domain.RoleName) error
	Assign(ctx context.Context, userID string, name domain.RoleName) error
	RolesOf(ctx context.Context, userID string) ([]domain.RoleName, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

// EnsureRole creates the role if absent; repeated calls are no-ops.
func (r *roleRepository) EnsureRole(ctx context.Context, name domain.RoleName) error {
	const query = `
        INSERT INTO roles (name)
        VALUES ($1)
        ON CONFLICT (name) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, name)
	return err
}

func (r *roleRepository) Assign(ctx context.Context, userID string, name domain.RoleName) error {
	const query = `
        INSERT INTO user_roles (user_id, role_id)
        SELECT $1, id FROM roles WHERE name=$2
        ON CONFLICT (user_id, role_id) DO NOTHING`

	cmd, err := r.pool.Exec(ctx, query, userID, name)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		// Either the role is missing or the assignment already exists;
		// distinguish by checking the role row.
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM roles WHERE name=$1)`, name).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrRoleNotFound
		}
	}
	return nil
}

// RolesOf returns role names ordered by assignment time; the first entry is
// the user's primary role.
func (r *roleRepository) RolesOf(ctx context.Context, userID string) ([]domain.RoleName, error) {
	const query = `
        SELECT r.name
        FROM user_roles ur
        JOIN roles r ON r.id = ur.role_id
        WHERE ur.user_id=$1
        ORDER BY ur.assigned_at, r.name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []domain.RoleName
	for rows.Next() {
		var name domain.RoleName
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
