package services

import (
	"context"
	"errors"
	"fmt"

	"dailydiet/stores"
)

// Identity is the user a session token resolved to.
type Identity struct {
	UserID string
}

type SessionService struct {
	users stores.UserStore
}

func NewSessionService(users stores.UserStore) *SessionService {
	return &SessionService{users: users}
}

// Resolve maps a session token to the identity it belongs to. An empty token is rejected
// without touching the store.
func (s *SessionService) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}
	user, err := s.users.FindBySessionToken(ctx, token)
	if errors.Is(err, stores.ErrNotFound) {
		return Identity{}, ErrUnauthenticated
	}
	if err != nil {
		return Identity{}, fmt.Errorf("resolving session: %w", err)
	}
	return Identity{UserID: user.ID}, nil
}
