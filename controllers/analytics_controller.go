// controllers/analytics_controller.go
package controllers

import (
	"net/http"

	"dailydiet/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AnalyticsController struct {
	Svc *services.MetricsService
	Log logrus.FieldLogger
}

func NewAnalyticsController(svc *services.MetricsService, log logrus.FieldLogger) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Log: log}
}

// GetMetrics recomputes the caller's adherence from their whole history.
func (h *AnalyticsController) GetMetrics(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	out, err := h.Svc.ForOwner(c.Request.Context(), id.UserID)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"user_id": id.UserID, "error": err}).Error("metrics failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, out)
}
