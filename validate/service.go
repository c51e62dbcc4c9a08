package validate

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceInput
		if ok, err := bind(c, &input); !ok {
			return err
		}
		c.Locals("createServiceInput", input)
		return c.Next()
	}
}

func EditService(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		serviceId, ok := paramId(c, key)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		var input model.EditServiceInput
		if ok, err := bind(c, &input); !ok {
			return err
		}
		c.Locals("editServiceInput", input)
		c.Locals("serviceId", serviceId)
		return c.Next()
	}
}
