package services

import (
	"context"
	"fmt"

	"dailydiet/models"
	"dailydiet/stores"
)

// Adherence summarises how well a meal history sticks to the diet.
type Adherence struct {
	TotalOfMeals              int `json:"totalOfMeals"`
	TotalOfMealsInDiet        int `json:"totalOfMealsInDiet"`
	TotalOfMealsOutDiet       int `json:"totalOfMealsOutDiet"`
	BestSequencyOfMealsInDiet int `json:"bestSequencyOfMealsInDiet"`
}

// ComputeAdherence walks meals in the order given. The best sequence is the longest run of
// adjacent in-diet meals in that order; with ListByOwner's most-recent-first ordering this
// is adjacency in reverse chronological order.
func ComputeAdherence(meals []models.Meal) Adherence {
	var out Adherence
	current := 0
	for _, m := range meals {
		out.TotalOfMeals++
		if m.IsInTheDiet {
			out.TotalOfMealsInDiet++
			current++
		} else {
			current = 0
		}
		if current > out.BestSequencyOfMealsInDiet {
			out.BestSequencyOfMealsInDiet = current
		}
	}
	out.TotalOfMealsOutDiet = out.TotalOfMeals - out.TotalOfMealsInDiet
	return out
}

type MetricsService struct {
	meals stores.MealStore
}

func NewMetricsService(meals stores.MealStore) *MetricsService {
	return &MetricsService{meals: meals}
}

// ForOwner recomputes the owner's adherence from their full history.
func (s *MetricsService) ForOwner(ctx context.Context, ownerID string) (Adherence, error) {
	meals, err := s.meals.ListByOwner(ctx, ownerID)
	if err != nil {
		return Adherence{}, fmt.Errorf("listing meals: %w", err)
	}
	return ComputeAdherence(meals), nil
}
