package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WebSocketUpgrade lets only websocket handshakes for a well-formed game ID
// and a known player through, and copies both IDs into the locals read by
// the connection handler.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID, err := uuid.Parse(c.Params("gameId"))
		if err != nil {
			log.Debugf("websocket upgrade for malformed game ID %q", c.Params("gameId"))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid game ID",
			})
		}

		playerID, ok := c.Locals("playerID").(string)
		if !ok || playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		// Locals of the upgrade request are the only ones the connection sees.
		c.Locals("wsGameID", gameID.String())
		c.Locals("wsPlayerID", playerID)
		return c.Next()
	}
}
