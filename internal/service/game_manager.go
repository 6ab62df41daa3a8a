// service/game_manager.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbeisheim/trichess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games   map[string]*model.Game
	engine  model.MoveSelector
	delay   time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	running sync.WaitGroup
	mu      sync.RWMutex
}

func NewGameManager(engine model.MoveSelector, engineDelay time.Duration) *GameManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &GameManager{
		games:  make(map[string]*model.Game),
		engine: engine,
		delay:  engineDelay,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (gm *GameManager) CreateGame(gameID, ownerID string, human model.Color) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	game := model.NewGame(gameID, ownerID, gm.engine, model.GameOptions{
		Human:       human,
		EngineDelay: gm.delay,
	})
	gm.games[gameID] = game
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID, playerID, from, to string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := game.MakeMove(playerID, from, to); err != nil {
		return err
	}
	gm.StartEngines(game)
	return nil
}

// StartEngines plays the engine colours of game in the background.
func (gm *GameManager) StartEngines(game *model.Game) {
	gm.running.Add(1)
	go func() {
		defer gm.running.Done()
		err := game.PlayEngineTurns(gm.ctx)
		switch {
		case err == nil, errors.Is(err, model.ErrEngineBusy), errors.Is(err, context.Canceled):
		default:
			log.Errorf("game %s: engine turns stopped: %v", game.ID, err)
		}
	}()
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}

// Close stops all engine turns and waits for them to return.
func (gm *GameManager) Close() {
	gm.cancel()
	gm.running.Wait()
}
