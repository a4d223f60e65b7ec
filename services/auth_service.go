package services

import (
	"context"
	"errors"
	"fmt"

	"dailydiet/stores"
	"dailydiet/telemetry"
	"dailydiet/utils"
)

type RegistrationService struct {
	users stores.UserStore
}

func NewRegistrationService(users stores.UserStore) *RegistrationService {
	return &RegistrationService{users: users}
}

// Register creates the user for email, binding it to inboundToken when the caller already
// holds one, or to a freshly generated token otherwise. issued reports whether the token
// is new and has to be handed back to the caller.
func (s *RegistrationService) Register(ctx context.Context, name, email, inboundToken string) (token string, issued bool, err error) {
	_, err = s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		telemetry.RecordRegistration("duplicate_email")
		return "", false, ErrDuplicateEmail
	case !errors.Is(err, stores.ErrNotFound):
		telemetry.RecordRegistration("error")
		return "", false, fmt.Errorf("looking up email: %w", err)
	}

	token = inboundToken
	if token == "" {
		token = utils.GenerateSessionToken()
		issued = true
	}

	if _, err := s.users.CreateUser(ctx, name, email, token); err != nil {
		switch {
		case errors.Is(err, stores.ErrDuplicateEmail):
			// lost a race with a concurrent registration for the same email
			telemetry.RecordRegistration("duplicate_email")
			return "", false, ErrDuplicateEmail
		case errors.Is(err, stores.ErrDuplicateSession):
			telemetry.RecordRegistration("session_in_use")
			return "", false, ErrSessionInUse
		}
		telemetry.RecordRegistration("error")
		return "", false, fmt.Errorf("creating user: %w", err)
	}

	telemetry.RecordRegistration("created")
	return token, issued, nil
}
