// Package stores persists users and meals. Every meal operation is scoped to an owner
// with a single combined predicate, so a meal owned by someone else looks exactly like
// a meal that does not exist.
package stores

import (
	"context"
	"errors"

	"dailydiet/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateSession = errors.New("session token already bound to a user")
	ErrUnknownOwner     = errors.New("meal owner does not exist")
)

// UserStore is the identity store.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, sessionToken string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindBySessionToken(ctx context.Context, token string) (*models.User, error)
}

// MealStore persists meals by owner.
type MealStore interface {
	Create(ctx context.Context, meal *models.Meal) (*models.Meal, error)
	Update(ctx context.Context, ownerID, mealID string, fields models.MealFields) (*models.Meal, error)
	Delete(ctx context.Context, ownerID, mealID string) error
	// ListByOwner returns meals most recent first; equal DateTime values keep insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Meal, error)
	// GetOne returns nil, nil when the owner has no meal with that id.
	GetOne(ctx context.Context, ownerID, mealID string) (*models.Meal, error)
}
