package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateforme/services-api/internal/domain/policy"
)

func TestProviderRegisterAndScoping(t *testing.T) {
	users := newStubUserRepo()
	svc := NewProviderService(newStubProviderRepo(users), nil, "", nil)
	ctx := context.Background()

	alex, err := svc.Register(ctx, RegisterProviderInput{
		Name: "Alex", Service: "Plumbing", Email: "a@x.com", Password: "plumb123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Plumbing", alex.Service)

	other, err := svc.Register(ctx, RegisterProviderInput{
		Name: "Sam", Service: "Painting", Email: "s@x.com", Password: "paint123",
	})
	require.NoError(t, err)

	actorAlex := policy.Actor{UserID: alex.UserID, Role: policy.RoleProvider, ProfileID: alex.ID}

	got, err := svc.Get(ctx, actorAlex, alex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)

	// another provider's record reads as not found
	_, err = svc.Get(ctx, actorAlex, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the public directory lists everyone
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProviderRegisterDuplicateUsername(t *testing.T) {
	users := newStubUserRepo()
	svc := NewProviderService(newStubProviderRepo(users), nil, "", nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterProviderInput{
		Name: "Alex", Service: "Plumbing", Email: "a@x.com", Username: "alex", Password: "plumb123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterProviderInput{
		Name: "Alexis", Service: "Tiling", Email: "alexis@x.com", Username: "alex", Password: "tile1234",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "username")
}

func TestProviderUpdateAndDelete(t *testing.T) {
	users := newStubUserRepo()
	repo := newStubProviderRepo(users)
	svc := NewProviderService(repo, nil, "", nil)
	ctx := context.Background()

	p, err := svc.Register(ctx, RegisterProviderInput{
		Name: "Alex", Service: "Plumbing", Email: "a@x.com", Password: "plumb123",
	})
	require.NoError(t, err)
	actor := policy.Actor{UserID: p.UserID, Role: policy.RoleProvider, ProfileID: p.ID}

	updated, err := svc.Update(ctx, actor, p.ID, UpdateProviderInput{Service: str("Heating")})
	require.NoError(t, err)
	assert.Equal(t, "Heating", updated.Service)
	assert.Equal(t, "Alex", updated.Name)

	require.NoError(t, svc.Delete(ctx, actor, p.ID))
	_, err = users.GetByID(ctx, p.UserID)
	assert.ErrorIs(t, err, ErrNotFound, "linked identity is deleted with the profile")
	assert.ErrorIs(t, svc.Delete(ctx, actor, p.ID), ErrNotFound)
}

func TestProviderSearchUnconfigured(t *testing.T) {
	svc := NewProviderService(newStubProviderRepo(newStubUserRepo()), nil, "", nil)

	// search degrades to an empty result when no index is configured
	hits, err := svc.Search(context.Background(), "plumbing", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
