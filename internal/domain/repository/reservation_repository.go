package repository

import (
	"context"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
)

type ReservationRepository interface {
	List(ctx context.Context, scope policy.Scope) ([]entity.Reservation, error)
	Get(ctx context.Context, scope policy.Scope, id int64) (*entity.Reservation, error)
	Create(ctx context.Context, r *entity.Reservation) error
	Update(ctx context.Context, scope policy.Scope, r *entity.Reservation) error
	Delete(ctx context.Context, scope policy.Scope, id int64) error
}
