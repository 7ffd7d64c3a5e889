package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
	"github.com/plateforme/services-api/pkg/helpers"
)

type ClientService struct {
	Clients repository.ClientRepository
	Logger  *logrus.Logger
}

func NewClientService(clients repository.ClientRepository, logger *logrus.Logger) *ClientService {
	return &ClientService{Clients: clients, Logger: logger}
}

type RegisterClientInput struct {
	Name        string
	Email       string
	PhoneNumber *string
	Username    string
	Password    string
}

// Register provisions a client account: the identity and its profile are
// created as one atomic unit, so a duplicate username or email leaves no
// orphan rows behind.
func (s *ClientService) Register(ctx context.Context, in RegisterClientInput) (*entity.Client, error) {
	if strings.TrimSpace(in.Password) == "" {
		return nil, validationError("password", "password is required to create an account")
	}
	username := in.Username
	if username == "" {
		username = in.Email
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Username: username, Email: in.Email, PasswordHash: hash}
	c := &entity.Client{Name: in.Name, Email: in.Email, PhoneNumber: in.PhoneNumber}
	if err := s.Clients.CreateWithUser(ctx, u, c); err != nil {
		return nil, translateRepoErr(err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"client_id": c.ID, "user_id": u.ID}).Info("client account provisioned")
	}
	return c, nil
}

// List returns the public client directory.
func (s *ClientService) List(ctx context.Context) ([]entity.Client, error) {
	return s.Clients.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, actor policy.Actor, id int64) (*entity.Client, error) {
	return s.Clients.Get(ctx, policy.ClientScope(actor), id)
}

// UpdateClientInput fields left nil keep their current values.
type UpdateClientInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

func (s *ClientService) Update(ctx context.Context, actor policy.Actor, id int64, in UpdateClientInput) (*entity.Client, error) {
	c, err := s.Clients.Get(ctx, policy.ClientScope(actor), id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		c.PhoneNumber = in.PhoneNumber
	}
	if err := s.Clients.Update(ctx, c); err != nil {
		return nil, translateRepoErr(err)
	}
	return c, nil
}

// Delete removes the client profile together with its identity; the
// client's reservations cascade away with it.
func (s *ClientService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if err := s.Clients.DeleteWithUser(ctx, policy.ClientScope(actor), id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("client_id", id).Info("client account deleted")
	}
	return nil
}
