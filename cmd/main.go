package main

import (
	"os"

	"dailydiet/config"
	"dailydiet/migrations"
	"dailydiet/routes"
	"dailydiet/stores"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger("info", "json").WithError(err).Fatal("invalid configuration")
	}
	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("database handle unavailable")
	}
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB); err != nil {
		log.WithError(err).Fatal("migrations failed")
	}

	deps := routes.NewDeps(
		stores.NewGormUserStore(db),
		stores.NewGormMealStore(db),
		sqlDB,
		cfg.SessionMaxAge,
		log,
	)
	r := routes.SetupRouter(deps)

	log.WithField("port", cfg.Port).Info("HTTP server is running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
