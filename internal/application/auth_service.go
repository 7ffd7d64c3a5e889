package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
	"github.com/plateforme/services-api/internal/infrastructure/session"
	"github.com/plateforme/services-api/pkg/helpers"
)

type AuthService struct {
	Users     repository.UserRepository
	Clients   repository.ClientRepository
	Providers repository.ProviderRepository
	Sessions  *session.Store
	Logger    *logrus.Logger
}

func NewAuthService(users repository.UserRepository, clients repository.ClientRepository, providers repository.ProviderRepository, sessions *session.Store, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Clients: clients, Providers: providers, Sessions: sessions, Logger: logger}
}

type LoginInput struct {
	Username string
	Password string
	Role     string
}

// LoginUser is the payload echoed back on a successful login. ProfileID is
// the client/provider row id when a profile exists, the user id otherwise.
type LoginUser struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	UserType    policy.Role `json:"user_type"`
	ProfileID   int64       `json:"profile_id"`
	PhoneNumber *string     `json:"phone_number"`
}

type LoginResult struct {
	User         LoginUser
	SessionToken string
	CSRFToken    string
}

// Login validates the (username, password, claimed role) triple, resolves
// the caller's effective role once, and establishes a server-side session.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	u, err := s.Users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationError("credentials", "invalid username or password")
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		return nil, validationError("credentials", "invalid username or password")
	}

	client, err := s.lookupClient(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	provider, err := s.lookupProvider(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	// Claimed-role checks mirror record visibility: an admin claim needs the
	// superuser flag, a client/provider claim needs the matching profile.
	switch in.Role {
	case "admin":
		if !u.IsSuperuser {
			return nil, validationError("role", "admin access denied")
		}
	case "client":
		if client == nil {
			return nil, validationError("role", "client profile not found")
		}
	case "provider":
		if provider == nil {
			return nil, validationError("role", "provider profile not found")
		}
	}

	// Effective role is resolved by precedence, independent of the claim:
	// superuser, then client profile, then provider profile.
	role := policy.RoleUser
	profileID := u.ID
	var phone *string
	switch {
	case u.IsSuperuser:
		role = policy.RoleAdmin
	case client != nil:
		role = policy.RoleClient
		profileID = client.ID
		phone = client.PhoneNumber
	case provider != nil:
		role = policy.RoleProvider
		profileID = provider.ID
		phone = provider.PhoneNumber
	}

	csrf := uuid.NewString()
	token, err := s.Sessions.Create(ctx, session.Data{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      role,
		ProfileID: profileID,
		CSRF:      csrf,
	})
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": role}).Info("login")
	}

	return &LoginResult{
		User: LoginUser{
			ID:          u.ID,
			Username:    u.Username,
			Email:       u.Email,
			UserType:    role,
			ProfileID:   profileID,
			PhoneNumber: phone,
		},
		SessionToken: token,
		CSRFToken:    csrf,
	}, nil
}

// Logout invalidates the server-side session. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, token)
}

func (s *AuthService) lookupClient(ctx context.Context, userID int64) (*entity.Client, error) {
	c, err := s.Clients.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

func (s *AuthService) lookupProvider(ctx context.Context, userID int64) (*entity.Provider, error) {
	p, err := s.Providers.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
