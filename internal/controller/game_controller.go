package controller

import (
	"github.com/benbeisheim/trichess-backend/internal/model"
	"github.com/benbeisheim/trichess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Color string `json:"color"`
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	human := model.White
	if len(c.Body()) > 0 {
		var req createGameRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.Color != "" {
			color, err := model.ParseColor(req.Color)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			human = color
		}
	}

	gameID, err := gc.gameService.CreateGame(playerID, human)
	if err != nil {
		log.Errorf("create game for player %s: %v", playerID, err)
		return errorResponse(c, err)
	}
	log.Infof("player %s created game %s as %s", playerID, gameID, human)

	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"color":   human,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, req.From, req.To); err != nil {
		return errorResponse(c, err)
	}

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from := c.Query("from")
	targets, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"from":    from,
		"targets": targets,
	})
}

func (gc *GameController) Hint(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	move, ok, err := gc.gameService.Hint(c.Params("gameId"), playerID)
	if err != nil {
		return errorResponse(c, err)
	}
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(move)
}
