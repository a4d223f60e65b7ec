package controllers

import (
	"errors"
	"net/http"
	"time"

	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserController struct {
	Registration  *services.RegistrationService
	SessionMaxAge time.Duration
	Log           logrus.FieldLogger
}

func NewUserController(reg *services.RegistrationService, sessionMaxAge time.Duration, log logrus.FieldLogger) *UserController {
	return &UserController{Registration: reg, SessionMaxAge: sessionMaxAge, Log: log}
}

type RegisterInput struct {
	Name  *string `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
}

// Register creates a user. A caller that already carries a sessionId keeps it; otherwise a
// new token is issued as the sessionId cookie.
func (h *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inbound := middlewares.SessionToken(c)
	token, issued, err := h.Registration.Register(c.Request.Context(), *input.Name, input.Email, inbound)
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	case errors.Is(err, services.ErrSessionInUse):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Session already in use"})
		return
	case err != nil:
		h.Log.WithFields(logrus.Fields{"error": err}).Error("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if issued {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middlewares.SessionCookie, token, int(h.SessionMaxAge.Seconds()), "/", "", false, true)
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": token})
}
