package validate

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly exige que el token pertenezca a una cuenta ADMIN
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := helper.GetInfoAccountFromToken(c)
		if !ok || claim.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		account, err := helper.GetUserByUsername(database.DB, input.Username)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		if account != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.USERNAME_TAKEN, errors.New("username exists"), "username")
		}
		if input.Role == "" {
			input.Role = constants.ROLE_RECEPCIONISTA
		}

		c.Locals("createAccountInput", input)
		return c.Next()
	}
}

func ChangePassword(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountId, ok := paramId(c, key)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("accountId invalid"), key)
		}

		var input model.ChangePasswordInput
		if ok, err := bind(c, &input); !ok {
			return err
		}
		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD, errors.New("newPassword not same repeatPassword"), "repeatPassword")
		}

		c.Locals("changePasswordInput", input)
		c.Locals("accountId", accountId)
		return c.Next()
	}
}

func ToggleActiveAccount(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountId, ok := paramId(c, key)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("accountId invalid"), key)
		}

		var input model.ToggleActiveInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		c.Locals("isActive", *input.Active)
		c.Locals("accountId", accountId)
		return c.Next()
	}
}
