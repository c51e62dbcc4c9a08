package handler

import (
	"errors"
	"fmt"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func roomNotFound(c *fiber.Ctx, roomId uint) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("La habitación con ID %d no existe.", roomId), helper.ErrNotFound)
}

func GetRooms(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	return paginated[model.Room](c, *pagination, func() *gorm.DB {
		return database.DB.Model(&model.Room{})
	})
}

func GetAllRooms(c *fiber.Ctx) error {
	return all[model.Room](c)
}

func GetRoomById(c *fiber.Ctx) error {
	roomId := c.Locals("roomId").(uint)
	room, err := first[model.Room](database.DB, roomId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if room == nil {
		return roomNotFound(c, roomId)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("createRoomInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	room := model.Room{
		Number:        input.Number,
		Type:          input.Type,
		PricePerNight: *input.PricePerNight,
		HotelID:       input.HotelID,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo crear la habitación", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func CreateRoomsBulk(c *fiber.Ctx) error {
	input, ok := c.Locals("bulkRoomInput").(model.BulkRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	rooms := make([]model.Room, 0, len(input.Rooms))
	for _, r := range input.Rooms {
		rooms = append(rooms, model.Room{
			Number:        r.Number,
			Type:          r.Type,
			PricePerNight: *r.PricePerNight,
			HotelID:       r.HotelID,
		})
	}
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rooms).Error
	}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudieron crear las habitaciones", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, rooms)
}

// errRoomOverCapacity: el nuevo tipo no admite a los huéspedes ya alojados
type errRoomOverCapacity struct {
	occupants int64
}

func (e errRoomOverCapacity) Error() string {
	return fmt.Sprintf("La habitación tiene %d huéspedes alojados", e.occupants)
}

// EditRoom bloquea la habitación mientras comprueba la capacidad, igual que Reserve
func EditRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("editRoomInput").(model.EditRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	roomId := c.Locals("roomId").(uint)
	ctx := c.UserContext()

	var room *model.Room
	err := database.NewStore(database.DB).Transaction(ctx, func(tx *database.Store) error {
		locked, err := tx.FindRoom(ctx, roomId, true)
		if err != nil {
			return err
		}
		if locked == nil {
			return &helper.NotFoundError{Entity: helper.EntityRoom, ID: roomId}
		}

		previousCapacity := locked.Type.Capacity()
		if input.Number != nil {
			locked.Number = *input.Number
		}
		if input.Type != nil {
			locked.Type = *input.Type
		}
		if input.PricePerNight != nil {
			locked.PricePerNight = *input.PricePerNight
		}
		if input.HotelID != nil {
			locked.HotelID = *input.HotelID
		}

		if locked.Type.Capacity() < previousCapacity {
			occupants, err := tx.CountGuestsInRoom(ctx, locked.ID)
			if err != nil {
				return err
			}
			if occupants > int64(locked.Type.Capacity()) {
				return errRoomOverCapacity{occupants: occupants}
			}
		}

		room = locked
		return tx.SaveRoom(ctx, locked)
	})
	if err != nil {
		var overCapacity errRoomOverCapacity
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return roomNotFound(c, roomId)
		case errors.As(err, &overCapacity):
			return utils.ValidationErrorResponse(c, utils.FieldErrors{"tipo": overCapacity.Error()})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo actualizar la habitación", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// DeleteRoom deja sin habitación a quien estuviera alojado en ella
func DeleteRoom(c *fiber.Ctx) error {
	roomId := c.Locals("roomId").(uint)
	room, err := first[model.Room](database.DB, roomId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if room == nil {
		return roomNotFound(c, roomId)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Guest{}).Where("room_id = ?", room.ID).Update("room_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(room).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No se pudo eliminar la habitación", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Habitación eliminada correctamente")
}

func GetRoomHotel(c *fiber.Ctx) error {
	roomId := c.Locals("roomId").(uint)
	var room model.Room
	if err := database.DB.Preload("Hotel").First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return roomNotFound(c, roomId)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room.Hotel)
}

func GetRoomGuests(c *fiber.Ctx) error {
	roomId := c.Locals("roomId").(uint)
	room, err := first[model.Room](database.DB, roomId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if room == nil {
		return roomNotFound(c, roomId)
	}

	var guests []model.Guest
	if err := database.DB.Where("room_id = ?", room.ID).Order("id ASC").Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if len(guests) == 0 {
		return utils.MessageResponse(c, fiber.StatusNotFound, "Esta habitación no tiene huéspedes")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, guests)
}

func GetRoomAvailability(c *fiber.Ctx) error {
	roomId := c.Locals("roomId").(uint)
	occupancy, err := helper.DefaultReservations(database.DB).Availability(c.UserContext(), roomId)
	if err != nil {
		return reservationError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, occupancy)
}
