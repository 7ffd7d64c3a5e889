package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
)

type ProviderRepository struct {
	pool *pgxpool.Pool
}

func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{pool: pool}
}

func (r *ProviderRepository) List(ctx context.Context) ([]entity.Provider, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, service, email, phone_number
		FROM providers
		ORDER BY id
	`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	providers := make([]entity.Provider, 0)
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Service, &p.Email, &p.PhoneNumber); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *ProviderRepository) Get(ctx context.Context, scope policy.Scope, id int64) (*entity.Provider, error) {
	if scope.Empty() || (!scope.All && scope.ProviderID != id) {
		return nil, repository.ErrNotFound
	}
	p := &entity.Provider{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, service, email, phone_number
		FROM providers
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Service, &p.Email, &p.PhoneNumber); err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Provider, error) {
	p := &entity.Provider{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, service, email, phone_number
		FROM providers
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Service, &p.Email, &p.PhoneNumber); err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

func (r *ProviderRepository) CreateWithUser(ctx context.Context, u *entity.User, p *entity.Provider) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, is_superuser)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, created_at
	`, u.Username, u.Email, u.PasswordHash)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return translateErr(err)
	}

	p.UserID = u.ID
	row = tx.QueryRow(ctx, `
		INSERT INTO providers (user_id, name, service, email, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.UserID, p.Name, p.Service, p.Email, p.PhoneNumber)
	if err := row.Scan(&p.ID); err != nil {
		return translateErr(err)
	}

	return tx.Commit(ctx)
}

func (r *ProviderRepository) Update(ctx context.Context, p *entity.Provider) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE providers
		SET name = $1, service = $2, email = $3, phone_number = $4
		WHERE id = $5
	`, p.Name, p.Service, p.Email, p.PhoneNumber, p.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProviderRepository) DeleteWithUser(ctx context.Context, scope policy.Scope, id int64) error {
	if scope.Empty() || (!scope.All && scope.ProviderID != id) {
		return repository.ErrNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID int64
	row := tx.QueryRow(ctx, `
		DELETE FROM providers
		WHERE id = $1
		RETURNING user_id
	`, id)
	if err := row.Scan(&userID); err != nil {
		return translateErr(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return translateErr(err)
	}

	return tx.Commit(ctx)
}

var _ repository.ProviderRepository = (*ProviderRepository)(nil)
