package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientScope(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  Scope
	}{
		{"admin sees all", Actor{UserID: 1, Role: RoleAdmin}, Scope{All: true}},
		{"client sees own profile", Actor{UserID: 2, Role: RoleClient, ProfileID: 7}, Scope{ClientID: 7}},
		{"provider sees no clients", Actor{UserID: 3, Role: RoleProvider, ProfileID: 4}, Scope{}},
		{"anonymous sees nothing", Anonymous(), Scope{}},
		{"profileless user sees nothing", Actor{UserID: 5, Role: RoleUser}, Scope{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientScope(tt.actor))
		})
	}
}

func TestProviderScope(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  Scope
	}{
		{"admin sees all", Actor{UserID: 1, Role: RoleAdmin}, Scope{All: true}},
		{"provider sees own profile", Actor{UserID: 2, Role: RoleProvider, ProfileID: 9}, Scope{ProviderID: 9}},
		{"client sees no providers", Actor{UserID: 3, Role: RoleClient, ProfileID: 4}, Scope{}},
		{"anonymous sees nothing", Anonymous(), Scope{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderScope(tt.actor))
		})
	}
}

func TestReservationScope(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  Scope
	}{
		{"admin sees all", Actor{UserID: 1, Role: RoleAdmin}, Scope{All: true}},
		{"client scoped to own reservations", Actor{UserID: 2, Role: RoleClient, ProfileID: 7}, Scope{ClientID: 7}},
		{"provider scoped to own reservations", Actor{UserID: 3, Role: RoleProvider, ProfileID: 4}, Scope{ProviderID: 4}},
		{"profileless user sees nothing", Actor{UserID: 5, Role: RoleUser}, Scope{}},
		{"anonymous sees nothing", Anonymous(), Scope{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReservationScope(tt.actor))
		})
	}
}

func TestScopeEmpty(t *testing.T) {
	assert.True(t, Scope{}.Empty())
	assert.False(t, Scope{All: true}.Empty())
	assert.False(t, Scope{ClientID: 1}.Empty())
	assert.False(t, Scope{ProviderID: 1}.Empty())
}

func TestActorAuthenticated(t *testing.T) {
	assert.False(t, Anonymous().Authenticated())
	assert.False(t, Actor{}.Authenticated())
	assert.True(t, Actor{UserID: 1, Role: RoleAdmin}.Authenticated())
	assert.True(t, Actor{UserID: 1, Role: RoleClient, ProfileID: 2}.Authenticated())
	assert.True(t, Actor{UserID: 1, Role: RoleProvider, ProfileID: 2}.Authenticated())
	assert.True(t, Actor{UserID: 1, Role: RoleUser}.Authenticated())
}
