package main

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/benbeisheim/trichess-backend/internal/engine"
	"github.com/benbeisheim/trichess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

type arena struct {
	engine      *engine.Engine
	games       int
	concurrency int
	maxPlies    int
	randomPlies int
}

type gameResult struct {
	index    int
	plies    int
	loser    *model.Color
	inCheck  bool
	duration time.Duration
}

func (a *arena) run(ctx context.Context) error {
	log.Infof("arena started: %d games, concurrency %d, depth %d", a.games, a.concurrency, a.engine.Depth())
	defer log.Info("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameIndexes = make(chan int)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameIndexes)
		for i := 1; i <= a.games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameIndexes <- i:
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(ctx, gameResults)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for index := range gameIndexes {
				res, err := a.playGame(ctx, index)
				if err != nil {
					return err
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case gameResults <- res:
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

// playGame lets the engine play every colour until a colour has no legal
// moves or maxPlies is reached. The first randomPlies plies are random,
// seeded by the game index, since the engine itself is deterministic.
func (a *arena) playGame(ctx context.Context, index int) (gameResult, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(int64(index)))
	board := model.NewBoard(true)
	turn := model.White
	res := gameResult{index: index}

	for res.plies < a.maxPlies {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		legal := model.LegalMoves(board, turn)
		if len(legal) == 0 {
			loser := turn
			res.loser = &loser
			res.inCheck = model.InCheck(board, turn)
			break
		}
		var m model.Move
		if res.plies < a.randomPlies {
			m = legal[rng.Intn(len(legal))]
		} else {
			m, _ = a.engine.SelectMove(board, turn)
		}
		board.Apply(m)
		res.plies++
		turn = turn.Next()
	}
	res.duration = time.Since(start)
	return res, nil
}

func showResults(ctx context.Context, gameResults <-chan gameResult) error {
	var defeats [model.NumColors]int
	adjourned := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-gameResults:
			if !ok {
				log.Infof("summary: white lost %d, black lost %d, orange lost %d, adjourned %d",
					defeats[model.White], defeats[model.Black], defeats[model.Orange], adjourned)
				return nil
			}
			if res.loser == nil {
				adjourned++
				log.Infof("game %d: adjourned after %d plies (%v)", res.index, res.plies, res.duration)
				continue
			}
			defeats[*res.loser]++
			kind := "stalemate"
			if res.inCheck {
				kind = "checkmate"
			}
			log.Infof("game %d: %s lost by %s after %d plies (%v)", res.index, *res.loser, kind, res.plies, res.duration)
		}
	}
}
