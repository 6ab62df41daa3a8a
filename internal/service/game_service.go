package service

import (
	"fmt"

	"github.com/benbeisheim/trichess-backend/internal/model"
	"github.com/benbeisheim/trichess-backend/internal/ws"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a game owned by playerID, who plays human. When human
// does not move first the engines start right away.
func (gs *GameService) CreateGame(playerID string, human model.Color) (string, error) {
	gameID := uuid.New().String()

	game, err := gs.gameManager.CreateGame(gameID, playerID, human)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	if human != model.White {
		gs.gameManager.StartEngines(game)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID, playerID, from, to string) error {
	return gs.gameManager.MakeMove(gameID, playerID, from, to)
}

func (gs *GameService) LegalMoves(gameID, from string) ([]string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMovesFrom(from)
}

func (gs *GameService) Hint(gameID, playerID string) (model.SimpleMove, bool, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.SimpleMove{}, false, err
	}
	return game.Hint(playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

func (gs *GameService) SendMessage(gameID, playerID string, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.SendMessage(playerID, msg)
}
