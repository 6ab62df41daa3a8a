package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/benbeisheim/trichess-backend/internal/config"
	"github.com/benbeisheim/trichess-backend/internal/engine"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	concurrency := flag.Int("concurrency", runtime.NumCPU(), "games played at the same time")
	depth := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	maxPlies := flag.Int("maxplies", 150, "plies after which a game is adjourned")
	randomPlies := flag.Int("randomplies", 4, "random plies played before the engine takes over")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	flag.Parse()

	level, err := config.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := arena{
		engine:      engine.NewEngine(engine.Options{Depth: *depth}),
		games:       *games,
		concurrency: max(*concurrency, 1),
		maxPlies:    *maxPlies,
		randomPlies: *randomPlies,
	}
	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
