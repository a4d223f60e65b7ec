package memory

import (
	"context"
	"testing"
	"time"

	"dailydiet/models"
	"dailydiet/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserUniqueness(t *testing.T) {
	ctx := context.Background()
	s := New()

	u, err := s.CreateUser(ctx, "Alice", "alice@example.com", "tok-1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = s.CreateUser(ctx, "Alice again", "alice@example.com", "tok-2")
	assert.ErrorIs(t, err, stores.ErrDuplicateEmail)

	_, err = s.CreateUser(ctx, "Mallory", "mallory@example.com", "tok-1")
	assert.ErrorIs(t, err, stores.ErrDuplicateSession)

	// a failed create leaves no trace behind
	_, err = s.FindBySessionToken(ctx, "tok-2")
	assert.ErrorIs(t, err, stores.ErrNotFound)
	_, err = s.FindByEmail(ctx, "mallory@example.com")
	assert.ErrorIs(t, err, stores.ErrNotFound)

	got, err := s.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestListByOwnerOrdering(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, err := s.CreateUser(ctx, "Alice", "alice@example.com", "tok")
	require.NoError(t, err)

	noon := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)
	names := []struct {
		name string
		at   time.Time
	}{
		{"first-at-noon", noon},
		{"breakfast", noon.Add(-4 * time.Hour)},
		{"dinner", noon.Add(7 * time.Hour)},
		{"second-at-noon", noon},
	}
	for _, n := range names {
		_, err := s.Create(ctx, &models.Meal{UserID: u.ID, Name: n.name, DateTime: n.at})
		require.NoError(t, err)
	}

	meals, err := s.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	var got []string
	for _, m := range meals {
		got = append(got, m.Name)
	}
	assert.Equal(t, []string{"dinner", "first-at-noon", "second-at-noon", "breakfast"}, got)
}

func TestMealOwnerScoping(t *testing.T) {
	ctx := context.Background()
	s := New()
	alice, err := s.CreateUser(ctx, "Alice", "alice@example.com", "a")
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "Bob", "bob@example.com", "b")
	require.NoError(t, err)

	meal, err := s.Create(ctx, &models.Meal{UserID: alice.ID, Name: "soup", DateTime: time.Now()})
	require.NoError(t, err)

	_, err = s.Update(ctx, bob.ID, meal.ID, models.MealFields{Name: "stolen"})
	assert.ErrorIs(t, err, stores.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, bob.ID, meal.ID), stores.ErrNotFound)

	got, err := s.GetOne(ctx, bob.ID, meal.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	bobMeals, err := s.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobMeals)

	got, err = s.GetOne(ctx, alice.ID, meal.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "soup", got.Name)
}

func TestCreateRejectsUnknownOwner(t *testing.T) {
	_, err := New().Create(context.Background(), &models.Meal{UserID: "missing", Name: "x"})
	assert.ErrorIs(t, err, stores.ErrUnknownOwner)
}

func TestReturnedMealsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, err := s.CreateUser(ctx, "Alice", "alice@example.com", "tok")
	require.NoError(t, err)
	meal, err := s.Create(ctx, &models.Meal{UserID: u.ID, Name: "original", DateTime: time.Now()})
	require.NoError(t, err)

	meal.Name = "changed by caller"
	got, err := s.GetOne(ctx, u.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Name)
}
