// Package policy decides which records each caller may see or mutate.
//
// The caller's role is resolved once per request into an Actor and passed
// explicitly; repositories translate the returned Scope into WHERE clauses,
// so an out-of-scope record surfaces as "not found" rather than "forbidden".
package policy

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleAdmin     Role = "admin"
	RoleClient    Role = "client"
	RoleProvider  Role = "provider"
	// RoleUser is an authenticated identity holding neither profile nor the
	// superuser flag. Every scope is empty for it: queries fail closed
	// instead of erroring.
	RoleUser Role = "user"
)

// Actor is the resolved caller of a request. ProfileID is the client or
// provider row id when Role is RoleClient or RoleProvider, zero otherwise.
type Actor struct {
	UserID    int64
	Role      Role
	ProfileID int64
}

func Anonymous() Actor {
	return Actor{Role: RoleAnonymous}
}

func (a Actor) Authenticated() bool {
	switch a.Role {
	case RoleAdmin, RoleClient, RoleProvider, RoleUser:
		return true
	}
	return false
}

// Scope restricts a query to the visible subset for an actor. The zero
// value is the empty scope: no rows are visible (fails closed).
type Scope struct {
	All        bool
	ClientID   int64
	ProviderID int64
}

func (s Scope) Empty() bool {
	return !s.All && s.ClientID == 0 && s.ProviderID == 0
}

// ClientScope governs client profile detail, update and destroy access:
// admins see every client, a client sees only its own profile.
func ClientScope(a Actor) Scope {
	switch a.Role {
	case RoleAdmin:
		return Scope{All: true}
	case RoleClient:
		return Scope{ClientID: a.ProfileID}
	}
	return Scope{}
}

// ProviderScope is symmetric to ClientScope for provider profiles.
func ProviderScope(a Actor) Scope {
	switch a.Role {
	case RoleAdmin:
		return Scope{All: true}
	case RoleProvider:
		return Scope{ProviderID: a.ProfileID}
	}
	return Scope{}
}

// ReservationScope governs the reservation ledger: admins see everything,
// clients and providers see only reservations naming them as a party.
func ReservationScope(a Actor) Scope {
	switch a.Role {
	case RoleAdmin:
		return Scope{All: true}
	case RoleClient:
		return Scope{ClientID: a.ProfileID}
	case RoleProvider:
		return Scope{ProviderID: a.ProfileID}
	}
	return Scope{}
}
