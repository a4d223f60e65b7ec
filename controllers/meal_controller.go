package controllers

import (
	"errors"
	"net/http"
	"time"

	"dailydiet/middlewares"
	"dailydiet/models"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MealController struct {
	Meals *services.MealService
	Log   logrus.FieldLogger
}

func NewMealController(meals *services.MealService, log logrus.FieldLogger) *MealController {
	return &MealController{Meals: meals, Log: log}
}

// Pointers so that "" and false are accepted while missing keys are not.
type MealInput struct {
	Name        *string    `json:"name" binding:"required"`
	Description *string    `json:"description" binding:"required"`
	Date        *time.Time `json:"date" binding:"required"`
	IsInTheDiet *bool      `json:"isInTheDiet" binding:"required"`
}

func (in MealInput) fields() models.MealFields {
	return models.MealFields{
		Name:        *in.Name,
		Description: *in.Description,
		DateTime:    *in.Date,
		IsInTheDiet: *in.IsInTheDiet,
	}
}

type mealURI struct {
	MealID string `uri:"mealId" binding:"required,uuid"`
}

func (h *MealController) CreateMeal(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var body MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.AddMeal(c.Request.Context(), id.UserID, body.fields())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var body MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.UpdateMeal(c.Request.Context(), id.UserID, uri.MealID, body.fields())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Meals.DeleteMeal(c.Request.Context(), id.UserID, uri.MealID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *MealController) ListMeals(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	meals, err := h.Meals.ListMeals(c.Request.Context(), id.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal answers 200 with "meal": null when the caller owns no such meal.
func (h *MealController) GetMeal(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.GetMeal(c.Request.Context(), id.UserID, uri.MealID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
	case errors.Is(err, services.ErrUnknownOwner):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown meal owner"})
	default:
		h.Log.WithFields(logrus.Fields{"path": c.FullPath(), "error": err}).Error("meal request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// --- helpers ---

// identity is a guard for handlers mounted behind SessionMiddleware.
func identity(c *gin.Context) (services.Identity, bool) {
	id, ok := middlewares.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
	}
	return id, ok
}
