package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
)

type ReservationService struct {
	Reservations repository.ReservationRepository
	Logger       *logrus.Logger
}

func NewReservationService(reservations repository.ReservationRepository, logger *logrus.Logger) *ReservationService {
	return &ReservationService{Reservations: reservations, Logger: logger}
}

// List returns the reservations visible to the actor: all of them for
// admins, only those naming the actor as client or provider otherwise.
func (s *ReservationService) List(ctx context.Context, actor policy.Actor) ([]entity.Reservation, error) {
	return s.Reservations.List(ctx, policy.ReservationScope(actor))
}

func (s *ReservationService) Get(ctx context.Context, actor policy.Actor, id int64) (*entity.Reservation, error) {
	return s.Reservations.Get(ctx, policy.ReservationScope(actor), id)
}

type CreateReservationInput struct {
	ClientID   int64
	ProviderID int64
	Service    string
	Date       entity.Date
	Status     entity.ReservationStatus
}

// Create records a reservation for the client/provider pair named in the
// payload. Any authenticated caller may create one; the references are
// trusted as given (checked only against existing profiles), not matched
// against the caller.
func (s *ReservationService) Create(ctx context.Context, actor policy.Actor, in CreateReservationInput) (*entity.Reservation, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !status.Valid() {
		return nil, validationError("status", "must be one of pending, approved, rejected, completed, cancelled")
	}

	res := &entity.Reservation{
		ClientID:   in.ClientID,
		ProviderID: in.ProviderID,
		Service:    in.Service,
		Date:       in.Date,
		Status:     status,
	}
	if err := s.Reservations.Create(ctx, res); err != nil {
		return nil, translateRepoErr(err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"reservation_id": res.ID,
			"client_id":      res.ClientID,
			"provider_id":    res.ProviderID,
			"created_by":     actor.UserID,
		}).Info("reservation created")
	}

	// Re-read unscoped so the response carries the joined party names even
	// when the creator is not in the reservation's visibility set.
	full, err := s.Reservations.Get(ctx, policy.Scope{All: true}, res.ID)
	if err != nil {
		return res, nil
	}
	return full, nil
}

type UpdateReservationInput struct {
	Service *string
	Date    *entity.Date
	Status  *entity.ReservationStatus
}

func (s *ReservationService) Update(ctx context.Context, actor policy.Actor, id int64, in UpdateReservationInput) (*entity.Reservation, error) {
	scope := policy.ReservationScope(actor)
	res, err := s.Reservations.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if in.Service != nil {
		res.Service = *in.Service
	}
	if in.Date != nil {
		res.Date = *in.Date
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, validationError("status", "must be one of pending, approved, rejected, completed, cancelled")
		}
		res.Status = *in.Status
	}

	if err := s.Reservations.Update(ctx, scope, res); err != nil {
		return nil, translateRepoErr(err)
	}
	return s.Reservations.Get(ctx, scope, id)
}

func (s *ReservationService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	return s.Reservations.Delete(ctx, policy.ReservationScope(actor), id)
}
