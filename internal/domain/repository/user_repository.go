package repository

import (
	"context"

	"github.com/plateforme/services-api/internal/domain/entity"
)

// UserRepository reads identities. Identity writes happen only through the
// profile repositories (CreateWithUser / DeleteWithUser) so that identity
// and profile always change together.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
