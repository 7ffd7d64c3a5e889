package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, email, phone_number
		FROM clients
		ORDER BY id
	`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	clients := make([]entity.Client, 0)
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Get(ctx context.Context, scope policy.Scope, id int64) (*entity.Client, error) {
	if scope.Empty() {
		return nil, repository.ErrNotFound
	}
	if !scope.All && scope.ClientID != id {
		return nil, repository.ErrNotFound
	}
	c := &entity.Client{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, email, phone_number
		FROM clients
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

func (r *ClientRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Client, error) {
	c := &entity.Client{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, email, phone_number
		FROM clients
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

// CreateWithUser provisions the identity and the client profile as a single
// unit: both inserts share one transaction and a failure of either rolls
// back the other.
func (r *ClientRepository) CreateWithUser(ctx context.Context, u *entity.User, c *entity.Client) error {
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

	c.UserID = u.ID
	row = tx.QueryRow(ctx, `
		INSERT INTO clients (user_id, name, email, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.UserID, c.Name, c.Email, c.PhoneNumber)
	if err := row.Scan(&c.ID); err != nil {
		return translateErr(err)
	}

	return tx.Commit(ctx)
}

func (r *ClientRepository) Update(ctx context.Context, c *entity.Client) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE clients
		SET name = $1, email = $2, phone_number = $3
		WHERE id = $4
	`, c.Name, c.Email, c.PhoneNumber, c.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteWithUser removes the scoped profile row and then its identity
// inside one transaction. Reservations referencing the client disappear
// via the FK cascade on clients.
func (r *ClientRepository) DeleteWithUser(ctx context.Context, scope policy.Scope, id int64) error {
	if scope.Empty() || (!scope.All && scope.ClientID != id) {
		return repository.ErrNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID int64
	row := tx.QueryRow(ctx, `
		DELETE FROM clients
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

var _ repository.ClientRepository = (*ClientRepository)(nil)
