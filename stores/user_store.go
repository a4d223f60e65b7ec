package stores

import (
	"context"
	"errors"
	"fmt"

	"dailydiet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormUserStore struct{ db *gorm.DB }

func NewGormUserStore(db *gorm.DB) *GormUserStore { return &GormUserStore{db: db} }

func (s *GormUserStore) CreateUser(ctx context.Context, name, email, sessionToken string) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		SessionID: sessionToken,
	}
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// both email and session_id are unique; tell them apart by looking the email up
		_, ferr := s.FindByEmail(ctx, email)
		switch {
		case ferr == nil:
			return nil, ErrDuplicateEmail
		case errors.Is(ferr, ErrNotFound):
			return nil, ErrDuplicateSession
		default:
			return nil, fmt.Errorf("resolving duplicate key for %s: %w", email, ferr)
		}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, "email = ?", email)
}

func (s *GormUserStore) FindBySessionToken(ctx context.Context, token string) (*models.User, error) {
	return s.findOne(ctx, "session_id = ?", token)
}

func (s *GormUserStore) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where(query, arg).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
