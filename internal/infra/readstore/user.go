package readstore

import (
	"context"

	"rehearsal-rooms/internal/domain/user"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/pgconv"
	"rehearsal-rooms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserReadStore reads account rows maintained by the identity service.
// This module never writes to the users table.
type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var (
		snapshot commands.UserSnapshot
		role     string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, role, is_active FROM users WHERE id = $1`, id).
		Scan(&snapshot.ID, &snapshot.Name, &role, &snapshot.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	parsed, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role on user row", err)
	}
	snapshot.Role = parsed

	return &snapshot, nil
}
