package application

import (
	"context"
	"time"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
)

// In-memory repositories mirroring the scoping and integrity behavior of
// the postgres implementations.

type stubUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*entity.User)}
}

func (r *stubUserRepo) insert(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return &repository.DuplicateError{Field: "username"}
		}
		if existing.Email == u.Email {
			return &repository.DuplicateError{Field: "email"}
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubClientRepo struct {
	clients      map[int64]*entity.Client
	users        *stubUserRepo
	reservations *stubReservationRepo
	nextID       int64

	// failProfileInsert simulates the profile insert failing after the
	// identity insert succeeded; the whole operation must leave no rows.
	failProfileInsert error
}

func newStubClientRepo(users *stubUserRepo) *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*entity.Client), users: users}
}

func (r *stubClientRepo) List(_ context.Context) ([]entity.Client, error) {
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClientRepo) Get(_ context.Context, scope policy.Scope, id int64) (*entity.Client, error) {
	if scope.Empty() || (!scope.All && scope.ClientID != id) {
		return nil, repository.ErrNotFound
	}
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) GetByUserID(_ context.Context, userID int64) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubClientRepo) CreateWithUser(_ context.Context, u *entity.User, c *entity.Client) error {
	for _, existing := range r.clients {
		if existing.Email == c.Email {
			return &repository.DuplicateError{Field: "email"}
		}
	}
	if err := r.users.insert(u); err != nil {
		return err
	}
	if r.failProfileInsert != nil {
		delete(r.users.users, u.ID) // rollback
		return r.failProfileInsert
	}
	r.nextID++
	c.ID = r.nextID
	c.UserID = u.ID
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) Update(_ context.Context, c *entity.Client) error {
	existing, ok := r.clients[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, other := range r.clients {
		if id != c.ID && other.Email == c.Email {
			return &repository.DuplicateError{Field: "email"}
		}
	}
	clone := *c
	clone.UserID = existing.UserID
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) DeleteWithUser(_ context.Context, scope policy.Scope, id int64) error {
	if scope.Empty() || (!scope.All && scope.ClientID != id) {
		return repository.ErrNotFound
	}
	c, ok := r.clients[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.clients, id)
	delete(r.users.users, c.UserID)
	if r.reservations != nil {
		r.reservations.cascadeClient(id)
	}
	return nil
}

type stubProviderRepo struct {
	providers    map[int64]*entity.Provider
	users        *stubUserRepo
	reservations *stubReservationRepo
	nextID       int64
}

func newStubProviderRepo(users *stubUserRepo) *stubProviderRepo {
	return &stubProviderRepo{providers: make(map[int64]*entity.Provider), users: users}
}

func (r *stubProviderRepo) List(_ context.Context) ([]entity.Provider, error) {
	out := make([]entity.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProviderRepo) Get(_ context.Context, scope policy.Scope, id int64) (*entity.Provider, error) {
	if scope.Empty() || (!scope.All && scope.ProviderID != id) {
		return nil, repository.ErrNotFound
	}
	p, ok := r.providers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProviderRepo) GetByUserID(_ context.Context, userID int64) (*entity.Provider, error) {
	for _, p := range r.providers {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubProviderRepo) CreateWithUser(_ context.Context, u *entity.User, p *entity.Provider) error {
	for _, existing := range r.providers {
		if existing.Email == p.Email {
			return &repository.DuplicateError{Field: "email"}
		}
	}
	if err := r.users.insert(u); err != nil {
		return err
	}
	r.nextID++
	p.ID = r.nextID
	p.UserID = u.ID
	clone := *p
	r.providers[p.ID] = &clone
	return nil
}

func (r *stubProviderRepo) Update(_ context.Context, p *entity.Provider) error {
	if _, ok := r.providers[p.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *p
	r.providers[p.ID] = &clone
	return nil
}

func (r *stubProviderRepo) DeleteWithUser(_ context.Context, scope policy.Scope, id int64) error {
	if scope.Empty() || (!scope.All && scope.ProviderID != id) {
		return repository.ErrNotFound
	}
	p, ok := r.providers[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.providers, id)
	delete(r.users.users, p.UserID)
	if r.reservations != nil {
		r.reservations.cascadeProvider(id)
	}
	return nil
}

type stubReservationRepo struct {
	reservations map[int64]*entity.Reservation
	clients      *stubClientRepo
	providers    *stubProviderRepo
	nextID       int64
}

func newStubReservationRepo(clients *stubClientRepo, providers *stubProviderRepo) *stubReservationRepo {
	r := &stubReservationRepo{
		reservations: make(map[int64]*entity.Reservation),
		clients:      clients,
		providers:    providers,
	}
	clients.reservations = r
	providers.reservations = r
	return r
}

func (r *stubReservationRepo) visible(scope policy.Scope, res *entity.Reservation) bool {
	switch {
	case scope.All:
		return true
	case scope.ClientID != 0:
		return res.ClientID == scope.ClientID
	case scope.ProviderID != 0:
		return res.ProviderID == scope.ProviderID
	}
	return false
}

func (r *stubReservationRepo) join(res entity.Reservation) entity.Reservation {
	if c, ok := r.clients.clients[res.ClientID]; ok {
		res.ClientName = c.Name
		res.ClientPhoneNumber = c.PhoneNumber
	}
	if p, ok := r.providers.providers[res.ProviderID]; ok {
		res.ProviderName = p.Name
		res.ProviderPhoneNumber = p.PhoneNumber
	}
	return res
}

func (r *stubReservationRepo) List(_ context.Context, scope policy.Scope) ([]entity.Reservation, error) {
	out := make([]entity.Reservation, 0)
	for _, res := range r.reservations {
		if r.visible(scope, res) {
			out = append(out, r.join(*res))
		}
	}
	return out, nil
}

func (r *stubReservationRepo) Get(_ context.Context, scope policy.Scope, id int64) (*entity.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok || !r.visible(scope, res) {
		return nil, repository.ErrNotFound
	}
	joined := r.join(*res)
	return &joined, nil
}

func (r *stubReservationRepo) Create(_ context.Context, res *entity.Reservation) error {
	if _, ok := r.clients.clients[res.ClientID]; !ok {
		return &repository.ReferenceError{Field: "client_id"}
	}
	if _, ok := r.providers.providers[res.ProviderID]; !ok {
		return &repository.ReferenceError{Field: "provider_id"}
	}
	r.nextID++
	res.ID = r.nextID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	clone := *res
	r.reservations[res.ID] = &clone
	return nil
}

func (r *stubReservationRepo) Update(_ context.Context, scope policy.Scope, res *entity.Reservation) error {
	existing, ok := r.reservations[res.ID]
	if !ok || !r.visible(scope, existing) {
		return repository.ErrNotFound
	}
	clone := *res
	clone.UpdatedAt = time.Now()
	r.reservations[res.ID] = &clone
	return nil
}

func (r *stubReservationRepo) Delete(_ context.Context, scope policy.Scope, id int64) error {
	res, ok := r.reservations[id]
	if !ok || !r.visible(scope, res) {
		return repository.ErrNotFound
	}
	delete(r.reservations, id)
	return nil
}

func (r *stubReservationRepo) cascadeClient(clientID int64) {
	for id, res := range r.reservations {
		if res.ClientID == clientID {
			delete(r.reservations, id)
		}
	}
}

func (r *stubReservationRepo) cascadeProvider(providerID int64) {
	for id, res := range r.reservations {
		if res.ProviderID == providerID {
			delete(r.reservations, id)
		}
	}
}

var (
	_ repository.UserRepository        = (*stubUserRepo)(nil)
	_ repository.ClientRepository      = (*stubClientRepo)(nil)
	_ repository.ProviderRepository    = (*stubProviderRepo)(nil)
	_ repository.ReservationRepository = (*stubReservationRepo)(nil)
)
