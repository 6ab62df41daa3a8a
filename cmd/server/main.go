package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/trichess-backend/internal/config"
	"github.com/benbeisheim/trichess-backend/internal/controller"
	"github.com/benbeisheim/trichess-backend/internal/engine"
	"github.com/benbeisheim/trichess-backend/internal/service"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Initialize services
	eng := engine.NewEngine(engine.Options{Depth: cfg.EngineDepth})
	gameManager := service.NewGameManager(eng, cfg.EngineDelay)
	gameService := service.NewGameService(gameManager)

	app := controller.NewApp(gameService, cfg.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("listening on %s (engine depth %d, delay %v)", cfg.Addr(), cfg.EngineDepth, cfg.EngineDelay)
		return app.Listen(cfg.Addr())
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		gameManager.Close()
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
