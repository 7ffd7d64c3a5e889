package repository

import (
	"context"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
)

type ProviderRepository interface {
	List(ctx context.Context) ([]entity.Provider, error)
	Get(ctx context.Context, scope policy.Scope, id int64) (*entity.Provider, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Provider, error)
	CreateWithUser(ctx context.Context, u *entity.User, p *entity.Provider) error
	Update(ctx context.Context, p *entity.Provider) error
	DeleteWithUser(ctx context.Context, scope policy.Scope, id int64) error
}
