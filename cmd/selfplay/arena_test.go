package main

import (
	"context"
	"errors"
	"testing"

	"github.com/benbeisheim/trichess-backend/internal/engine"
)

func testArena(games int) *arena {
	return &arena{
		engine:      engine.NewEngine(engine.Options{Depth: 1}),
		games:       games,
		concurrency: 2,
		maxPlies:    12,
		randomPlies: 4,
	}
}

func TestPlayGameIsReproducible(t *testing.T) {
	a := testArena(1)

	first, err := a.playGame(context.Background(), 3)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if first.plies > a.maxPlies || first.plies == 0 {
		t.Fatalf("plies = %d", first.plies)
	}
	if first.loser == nil && first.plies != a.maxPlies {
		t.Fatalf("game stopped after %d plies without a loser", first.plies)
	}

	second, _ := a.playGame(context.Background(), 3)
	if first.plies != second.plies || (first.loser == nil) != (second.loser == nil) {
		t.Fatalf("same seed gave %+v then %+v", first, second)
	}
}

func TestPlayGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testArena(1).playGame(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestArenaRun(t *testing.T) {
	if err := testArena(4).run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}
