// Package session keeps server-side sessions in Redis. A session is a hash
// keyed by an opaque token; the cookie carries only the token.
package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/plateforme/services-api/internal/domain/policy"
)

var ErrNotFound = errors.New("session not found")

// Data is what a session records about the authenticated caller. Role and
// ProfileID are resolved at login so requests never re-probe the profile
// tables.
type Data struct {
	UserID    int64
	Username  string
	Email     string
	Role      policy.Role
	ProfileID int64
	CSRF      string
}

func (d Data) Actor() policy.Actor {
	return policy.Actor{UserID: d.UserID, Role: d.Role, ProfileID: d.ProfileID}
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create stores the session hash under a fresh token and returns the token.
func (s *Store) Create(ctx context.Context, d Data) (string, error) {
	token := uuid.NewString()
	key := sessionKey(token)

	fields := map[string]any{
		"user_id":    strconv.FormatInt(d.UserID, 10),
		"username":   d.Username,
		"email":      d.Email,
		"role":       string(d.Role),
		"profile_id": strconv.FormatInt(d.ProfileID, 10),
		"csrf":       d.CSRF,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (Data, error) {
	fields, err := s.rdb.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return Data{}, err
	}
	if len(fields) == 0 {
		return Data{}, ErrNotFound
	}

	userID, _ := strconv.ParseInt(fields["user_id"], 10, 64)
	profileID, _ := strconv.ParseInt(fields["profile_id"], 10, 64)
	return Data{
		UserID:    userID,
		Username:  fields["username"],
		Email:     fields["email"],
		Role:      policy.Role(fields["role"]),
		ProfileID: profileID,
		CSRF:      fields["csrf"],
	}, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

// TTL exposes the configured session lifetime for cookie max-age.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
