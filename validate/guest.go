package validate

import (
	"errors"
	"fmt"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func documentTaken(db *gorm.DB, document string, excludeId uint) (bool, error) {
	var count int64
	query := db.Model(&model.Guest{}).Where("document = ?", document)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func CreateGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateGuestInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		taken, err := documentTaken(database.DB, input.Document, 0)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		if taken {
			return utils.ValidationErrorResponse(c, utils.FieldErrors{"dniPasaporte": "Ya existe un huésped con ese documento"})
		}

		c.Locals("createGuestInput", input)
		return c.Next()
	}
}

func EditGuest(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		guestId, ok := paramId(c, key)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditGuestInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		var guest model.Guest
		if err := database.DB.First(&guest, guestId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El huésped con ID %d no existe.", guestId), nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}

		if input.Document != nil && *input.Document != guest.Document {
			taken, err := documentTaken(database.DB, *input.Document, guestId)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
			}
			if taken {
				return utils.ValidationErrorResponse(c, utils.FieldErrors{"dniPasaporte": "Ya existe un huésped con ese documento"})
			}
		}

		c.Locals("editGuestInput", input)
		c.Locals("guestId", guestId)
		return c.Next()
	}
}
