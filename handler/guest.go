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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func guestNotFound(c *fiber.Ctx, guestId uint) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El huésped con ID %d no existe.", guestId), helper.ErrNotFound)
}

// reservationError traduce los errores del flujo de reservas a respuestas HTTP
func reservationError(c *fiber.Ctx, err error) error {
	var notFound *helper.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
	case errors.Is(err, helper.ErrRoomUnavailable):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_AVAILABLE, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

func GetGuests(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	return paginated[model.Guest](c, *pagination, func() *gorm.DB {
		return database.DB.Model(&model.Guest{})
	})
}

func GetAllGuests(c *fiber.Ctx) error {
	return all[model.Guest](c)
}

func GetGuestById(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(uint)
	guest, err := first[model.Guest](database.DB, guestId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if guest == nil {
		return guestNotFound(c, guestId)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func CreateGuest(c *fiber.Ctx) error {
	input, ok := c.Locals("createGuestInput").(model.CreateGuestInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var guest model.Guest
	copier.Copy(&guest, &input)
	if err := database.DB.Create(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo crear el huésped", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, guest)
}

func EditGuest(c *fiber.Ctx) error {
	input, ok := c.Locals("editGuestInput").(model.EditGuestInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	guestId := c.Locals("guestId").(uint)

	guest, err := first[model.Guest](database.DB, guestId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if guest == nil {
		return guestNotFound(c, guestId)
	}

	copier.CopyWithOption(guest, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Model(guest).Select("first_name", "last_name", "document").Updates(guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo actualizar el huésped", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func DeleteGuest(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(uint)
	guest, err := first[model.Guest](database.DB, guestId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if guest == nil {
		return guestNotFound(c, guestId)
	}
	if err := database.DB.Delete(guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No se pudo eliminar el huésped", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Huésped eliminado correctamente")
}

func GetGuestRoom(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(uint)
	var guest model.Guest
	if err := database.DB.Preload("Room").First(&guest, guestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guestNotFound(c, guestId)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if guest.Room == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, constants.GUEST_HAS_NO_ROOM)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, guest.Room)
}

func ReserveRoom(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(uint)
	roomId := c.Locals("roomId").(uint)

	guest, err := helper.DefaultReservations(database.DB).Reserve(c.UserContext(), guestId, roomId)
	if err != nil {
		return reservationError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, guest)
}

func CheckoutGuest(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(uint)

	if _, err := helper.DefaultReservations(database.DB).Checkout(c.UserContext(), guestId); err != nil {
		var notFound *helper.NotFoundError
		if errors.As(err, &notFound) {
			return guestNotFound(c, guestId)
		}
		return reservationError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.CHECKOUT_SUCCESS)
}

// GetGuestQR devuelve un PNG con los datos de la estancia actual
func GetGuestQR(c *fiber.Ctx) error {
	guestId := c.Locals("guestId").(uint)
	var guest model.Guest
	if err := database.DB.Preload("Room.Hotel").First(&guest, guestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guestNotFound(c, guestId)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if !guest.CheckedIn() || guest.Room == nil || guest.CheckinAt == nil {
		return utils.MessageResponse(c, fiber.StatusBadRequest, constants.GUEST_HAS_NO_ROOM)
	}

	pass := utils.StayPass{
		GuestID:   guest.ID,
		Document:  guest.Document,
		Room:      guest.Room.Number,
		CheckinAt: *guest.CheckinAt,
	}
	if guest.Room.Hotel != nil {
		pass.Hotel = guest.Room.Hotel.Name
	}

	png, err := utils.StayPassPNG(pass)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
