// Aplica as migrações SQL embutidas no banco configurado.
package main

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/infrastructure/postgres"
	"github.com/estoqueti/estoque-web/pkg/config"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}
	log.Info().Msg("migrações aplicadas")
}
