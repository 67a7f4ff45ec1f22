package main

import (
	"context"
	"time"

	"github.com/tu-usuario/cosmetica-saas/internal/infrastructure/postgres"
	"github.com/tu-usuario/cosmetica-saas/pkg/config"
	"github.com/tu-usuario/cosmetica-saas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "migration",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("ejecutar migraciones")
	}

	log.Info().Msg("migraciones aplicadas")
}
