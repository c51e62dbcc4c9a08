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

var hotelUniqueColumns = []struct {
	column, field string
}{
	{"address", "direccion"},
	{"phone", "telefono"},
	{"email", "email"},
	{"website", "sitioWeb"},
}

// hotelConflicts comprueba los campos únicos; values va indexado por nombre JSON
func hotelConflicts(db *gorm.DB, excludeId uint, values map[string]string) (utils.FieldErrors, error) {
	errs := utils.FieldErrors{}
	for _, u := range hotelUniqueColumns {
		value, ok := values[u.field]
		if !ok {
			continue
		}
		var count int64
		query := db.Model(&model.Hotel{}).Where(u.column+" = ?", value)
		if excludeId > 0 {
			query = query.Where("id <> ?", excludeId)
		}
		if err := query.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			errs.Add(u.field, fmt.Sprintf("El valor de %s ya está en uso", u.field))
		}
	}
	return errs, nil
}

func hotelValues(in model.CreateHotelInput) map[string]string {
	return map[string]string{
		"direccion": in.Address,
		"telefono":  in.Phone,
		"email":     in.Email,
		"sitioWeb":  in.Website,
	}
}

func CreateHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHotelInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		errs, err := hotelConflicts(database.DB, 0, hotelValues(input))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		if len(errs) > 0 {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("createHotelInput", input)
		return c.Next()
	}
}

func CreateHotelCascade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHotelCascadeInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		errs, err := hotelConflicts(database.DB, 0, hotelValues(input.Hotel()))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		seen := make(map[string]bool, len(input.Rooms))
		for i, r := range input.Rooms {
			if seen[r.Number] {
				errs.Add(fmt.Sprintf("habitaciones[%d].numero", i), "Número de habitación repetido")
			}
			seen[r.Number] = true
		}
		if len(errs) > 0 {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("cascadeHotelInput", input)
		return c.Next()
	}
}

func EditHotel(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hotelId, ok := paramId(c, key)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditHotelInput
		if ok, err := bind(c, &input); !ok {
			return err
		}

		var hotel model.Hotel
		if err := database.DB.First(&hotel, hotelId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El hotel con ID %d no existe.", hotelId), nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}

		values := map[string]string{}
		if input.Address != nil {
			values["direccion"] = *input.Address
		}
		if input.Phone != nil {
			values["telefono"] = *input.Phone
		}
		if input.Email != nil {
			values["email"] = *input.Email
		}
		if input.Website != nil {
			values["sitioWeb"] = *input.Website
		}
		errs, err := hotelConflicts(database.DB, hotelId, values)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		if len(errs) > 0 {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("editHotelInput", input)
		c.Locals("hotelId", hotelId)
		return c.Next()
	}
}
