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

func roomNumberTaken(db *gorm.DB, hotelId uint, number string, excludeId uint) (bool, error) {
	var count int64
	query := db.Model(&model.Room{}).Where("hotel_id = ? AND number = ?", hotelId, number)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func hotelExists(db *gorm.DB, hotelId uint) (bool, error) {
	var count int64
	err := db.Model(&model.Hotel{}).Where("id = ?", hotelId).Count(&count).Error
	return count > 0, err
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if ok, err := bind(c, &input); !ok {
			return err
		}
		db := database.DB

		exists, err := hotelExists(db, input.HotelID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		if !exists {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El hotel con id %d no existe", input.HotelID), nil)
		}

		taken, err := roomNumberTaken(db, input.HotelID, input.Number, 0)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}
		if taken {
			return utils.ValidationErrorResponse(c, utils.FieldErrors{"numero": "El número de habitación ya existe en este hotel"})
		}

		c.Locals("createRoomInput", input)
		return c.Next()
	}
}

func CreateRoomsBulk() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BulkRoomInput
		if ok, err := bind(c, &input); !ok {
			return err
		}
		db := database.DB

		errs := utils.FieldErrors{}
		checkedHotels := map[uint]bool{}
		seen := map[string]bool{}
		for i, r := range input.Rooms {
			exists, checked := checkedHotels[r.HotelID]
			if !checked {
				var err error
				exists, err = hotelExists(db, r.HotelID)
				if err != nil {
					return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
				}
				checkedHotels[r.HotelID] = exists
			}
			if !exists {
				errs.Add(fmt.Sprintf("habitaciones[%d].hotel_id", i), fmt.Sprintf("El hotel con id %d no existe", r.HotelID))
				continue
			}

			key := fmt.Sprintf("%d/%s", r.HotelID, r.Number)
			if seen[key] {
				errs.Add(fmt.Sprintf("habitaciones[%d].numero", i), "Número de habitación repetido")
				continue
			}
			seen[key] = true

			taken, err := roomNumberTaken(db, r.HotelID, r.Number, 0)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
			}
			if taken {
				errs.Add(fmt.Sprintf("habitaciones[%d].numero", i), "El número de habitación ya existe en este hotel")
			}
		}
		if len(errs) > 0 {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("bulkRoomInput", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomId, ok := paramId(c, key)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditRoomInput
		if ok, err := bind(c, &input); !ok {
			return err
		}
		db := database.DB

		var room model.Room
		if err := db.First(&room, roomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("La habitación con ID %d no existe.", roomId), nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
		}

		targetHotel := room.HotelID
		if input.HotelID != nil {
			targetHotel = *input.HotelID
			exists, err := hotelExists(db, targetHotel)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
			}
			if !exists {
				return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El hotel con id %d no existe", targetHotel), nil)
			}
		}

		targetNumber := room.Number
		if input.Number != nil {
			targetNumber = *input.Number
		}
		if targetHotel != room.HotelID || targetNumber != room.Number {
			taken, err := roomNumberTaken(db, targetHotel, targetNumber, room.ID)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
			}
			if taken {
				return utils.ValidationErrorResponse(c, utils.FieldErrors{"numero": "El número de habitación ya existe en este hotel"})
			}
		}

		c.Locals("editRoomInput", input)
		c.Locals("roomId", roomId)
		return c.Next()
	}
}
