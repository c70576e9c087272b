package app

import (
	"github.com/AKARSH147/hrms/internal/shared/config"
	"github.com/AKARSH147/hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, brings the schema up to date and
// registers every module's routes on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	if err := connection.MigrateUp(cfg.MigrationsDir, cfg.DatabaseURL()); err != nil {
		return err
	}

	registerModules(router, db, zap.L())
	return nil
}
