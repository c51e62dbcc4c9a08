package middleware

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Protected acepta la cookie access_token o la cabecera Authorization: Bearer
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", jwtToken)

		// una cuenta desactivada pierde el acceso aunque su token siga vigente
		claim, ok := helper.GetInfoAccountFromToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("invalid claims"))
		}
		var account model.Account
		if err := database.DB.Select("id", "active").First(&account, claim.AccountId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}
		if !account.Active {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_ACTIVE, errors.New("account not active"))
		}
		return c.Next()
	}
}

func WebsocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
