package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/estoqueti/estoque-web/internal/application/usecase"
	infrapdf "github.com/estoqueti/estoque-web/internal/infrastructure/pdf"
	"github.com/estoqueti/estoque-web/internal/infrastructure/postgres"
	"github.com/estoqueti/estoque-web/internal/interfaces/web"
	"github.com/estoqueti/estoque-web/pkg/config"
	"github.com/estoqueti/estoque-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	lojaRepo := postgres.NewLojaRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	authUC := usecase.NewAuthUseCase(usuarioRepo, auditoriaRepo, log)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo, auditoriaRepo, log)
	itemUC := usecase.NewItemUseCase(itemRepo, auditoriaRepo, log)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, fornecedorRepo, itemRepo, auditoriaRepo, log)
	lojaUC := usecase.NewLojaUseCase(lojaRepo, auditoriaRepo, log)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	relatorioUC := usecase.NewRelatorioUseCase(itemRepo, infrapdf.NewRelatorioInventarioMaroto())

	app := web.NewApp(cfg.App.Name, log)
	sessions := web.NewSessionStore(cfg.Session)
	web.Router(app, web.RouterDeps{
		Sessions:     sessions,
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		ItemUC:       itemUC,
		RelatorioUC:  relatorioUC,
		FornecedorUC: fornecedorUC,
		PedidoUC:     pedidoUC,
		LojaUC:       lojaUC,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escutando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	// Encerramento gracioso: espera SIGINT/SIGTERM e dá 10s para as
	// requisições em andamento terminarem.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor")
	}
	log.Info().Msg("servidor encerrado")
}
