package routes

import (
	"time"

	"dailydiet/controllers"
	"dailydiet/middlewares"
	"dailydiet/services"
	"dailydiet/stores"
	"dailydiet/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps is everything the router needs; build it once at startup with NewDeps.
type Deps struct {
	Sessions  middlewares.SessionResolver
	Users     *controllers.UserController
	Meals     *controllers.MealController
	Analytics *controllers.AnalyticsController
	Realtime  *controllers.RealtimeController
	// Health is optional; /healthz is not mounted without it.
	Health *controllers.HealthController
	Log    logrus.FieldLogger
}

// NewDeps wires services and controllers over the given stores. db may be nil.
func NewDeps(users stores.UserStore, meals stores.MealStore, db controllers.Pinger, sessionMaxAge time.Duration, log logrus.FieldLogger) Deps {
	hub := services.NewRealtimeHub()
	metrics := services.NewMetricsService(meals)
	mealSvc := services.NewMealService(meals, services.NewMetricsBus(metrics, hub, log))

	deps := Deps{
		Sessions:  services.NewSessionService(users),
		Users:     controllers.NewUserController(services.NewRegistrationService(users), sessionMaxAge, log),
		Meals:     controllers.NewMealController(mealSvc, log),
		Analytics: controllers.NewAnalyticsController(metrics, log),
		Realtime:  controllers.NewRealtimeController(hub, metrics, log),
		Log:       log,
	}
	if db != nil {
		deps.Health = controllers.NewHealthController(db)
	}
	return deps
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.Instrument(), middlewares.RequestLogger(d.Log))

	r.GET("/metrics", gin.WrapH(telemetry.Handler()))
	if d.Health != nil {
		r.GET("/healthz", d.Health.Healthz)
	}

	// Public registration
	r.POST("/users", d.Users.Register)

	// Protected meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.SessionMiddleware(d.Sessions, d.Log))
	{
		meals.POST("", d.Meals.CreateMeal)
		meals.GET("", d.Meals.ListMeals)
		meals.GET("/metrics", d.Analytics.GetMetrics)
		meals.GET("/live", d.Realtime.LiveMetrics)
		meals.GET("/:mealId", d.Meals.GetMeal)
		meals.PUT("/:mealId", d.Meals.UpdateMeal)
		meals.DELETE("/:mealId", d.Meals.DeleteMeal)
	}

	return r
}
