package stores

import (
	"context"
	"errors"
	"time"

	"dailydiet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormMealStore struct{ db *gorm.DB }

func NewGormMealStore(db *gorm.DB) *GormMealStore { return &GormMealStore{db: db} }

func (s *GormMealStore) Create(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	meal.ID = uuid.NewString()
	err := s.db.WithContext(ctx).Create(meal).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, ErrUnknownOwner
	}
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// Update rewrites the mutable columns in one UPDATE ... RETURNING statement.
func (s *GormMealStore) Update(ctx context.Context, ownerID, mealID string, fields models.MealFields) (*models.Meal, error) {
	var meal models.Meal
	res := s.db.WithContext(ctx).
		Model(&meal).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", mealID, ownerID).
		Updates(map[string]interface{}{
			"name":           fields.Name,
			"description":    fields.Description,
			"date_time":      fields.DateTime,
			"is_in_the_diet": fields.IsInTheDiet,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &meal, nil
}

func (s *GormMealStore) Delete(ctx context.Context, ownerID, mealID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, ownerID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormMealStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date_time DESC").
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *GormMealStore) GetOne(ctx context.Context, ownerID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, ownerID).
		Take(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}
