package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, is_superuser, created_at
		FROM users
		WHERE id = $1
	`, id)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, is_superuser, created_at
		FROM users
		WHERE username = $1
	`, username)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
