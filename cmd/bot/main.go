package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ilya-HxH/TgBot/internal/application/auth"
	"github.com/Ilya-HxH/TgBot/internal/application/checkout"
	"github.com/Ilya-HxH/TgBot/internal/application/store"
	"github.com/Ilya-HxH/TgBot/internal/infrastructure/memory"
	"github.com/Ilya-HxH/TgBot/internal/infrastructure/postgres"
	apphttp "github.com/Ilya-HxH/TgBot/internal/interfaces/http"
	"github.com/Ilya-HxH/TgBot/internal/interfaces/telegram"
	"github.com/Ilya-HxH/TgBot/pkg/config"
	"github.com/Ilya-HxH/TgBot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	sessions := memory.NewSessionStore()

	authUC := auth.NewUseCase(userRepo, sessions)
	storeUC := store.NewUseCase(productRepo, cartRepo, purchaseRepo)
	checkoutUC := checkout.NewUseCase(txRunner)

	bot := telegram.NewBot(telegram.Deps{
		Auth:     authUC,
		Store:    storeUC,
		Checkout: checkoutUC,
		Sessions: sessions,
		Log:      log,
	})

	poller, err := telegram.NewPoller(cfg.Telegram.Token, bot, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Telegram")
	}

	app := apphttp.NewApp(cfg.App.Name)
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		if err := poller.Run(ctx); err != nil {
			log.Error().Err(err).Msg("long polling finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando...")
	cancel()
	<-pollDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}

	log.Info().Msg("aplicación detenida")
}
