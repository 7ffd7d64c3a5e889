package repository

import (
	"context"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
)

type ClientRepository interface {
	// List returns the public client directory, unscoped.
	List(ctx context.Context) ([]entity.Client, error)
	Get(ctx context.Context, scope policy.Scope, id int64) (*entity.Client, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Client, error)
	// CreateWithUser inserts the identity and the profile in one
	// transaction; on any failure neither row persists.
	CreateWithUser(ctx context.Context, u *entity.User, c *entity.Client) error
	Update(ctx context.Context, c *entity.Client) error
	// DeleteWithUser removes the profile and its linked identity in one
	// transaction. Reservations go with the profile via cascade.
	DeleteWithUser(ctx context.Context, scope policy.Scope, id int64) error
}
