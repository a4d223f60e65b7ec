// services/meal_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"dailydiet/models"
	"dailydiet/stores"
	"dailydiet/telemetry"
)

type MealService struct {
	meals stores.MealStore
	bus   *MetricsBus
}

// NewMealService wires the meal store. bus may be nil when live metrics are not served.
func NewMealService(meals stores.MealStore, bus *MetricsBus) *MealService {
	return &MealService{meals: meals, bus: bus}
}

func (s *MealService) AddMeal(ctx context.Context, ownerID string, fields models.MealFields) (*models.Meal, error) {
	meal, err := s.meals.Create(ctx, &models.Meal{
		UserID:      ownerID,
		Name:        fields.Name,
		Description: fields.Description,
		DateTime:    fields.DateTime,
		IsInTheDiet: fields.IsInTheDiet,
	})
	if errors.Is(err, stores.ErrUnknownOwner) {
		return nil, ErrUnknownOwner
	}
	if err != nil {
		return nil, fmt.Errorf("creating meal: %w", err)
	}

	telemetry.RecordMealMutation("create")
	s.bus.Publish(ctx, ownerID)
	return meal, nil
}

func (s *MealService) UpdateMeal(ctx context.Context, ownerID, mealID string, fields models.MealFields) (*models.Meal, error) {
	meal, err := s.meals.Update(ctx, ownerID, mealID, fields)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating meal %s: %w", mealID, err)
	}

	telemetry.RecordMealMutation("update")
	s.bus.Publish(ctx, ownerID)
	return meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, ownerID, mealID string) error {
	err := s.meals.Delete(ctx, ownerID, mealID)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrMealNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting meal %s: %w", mealID, err)
	}

	telemetry.RecordMealMutation("delete")
	s.bus.Publish(ctx, ownerID)
	return nil
}

// ListMeals returns the owner's meals, most recent first.
func (s *MealService) ListMeals(ctx context.Context, ownerID string) ([]models.Meal, error) {
	return s.meals.ListByOwner(ctx, ownerID)
}

// GetMeal returns nil without error when the owner has no such meal.
func (s *MealService) GetMeal(ctx context.Context, ownerID, mealID string) (*models.Meal, error) {
	return s.meals.GetOne(ctx, ownerID, mealID)
}
