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

func hotelNotFound(c *fiber.Ctx, hotelId uint) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El hotel con ID %d no existe.", hotelId), helper.ErrNotFound)
}

func GetHotels(c *fiber.Ctx) error {
	filter := new(model.FilterHotel)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	return paginated[model.Hotel](c, filter.Pagination, func() *gorm.DB {
		query := database.DB.Model(&model.Hotel{})
		query = likeFilter(query, "name", filter.Name)
		query = likeFilter(query, "address", filter.Address)
		query = likeFilter(query, "phone", filter.Phone)
		query = likeFilter(query, "email", filter.Email)
		query = likeFilter(query, "website", filter.Website)
		return query
	})
}

func GetAllHotels(c *fiber.Ctx) error {
	return all[model.Hotel](c)
}

func GetHotelById(c *fiber.Ctx) error {
	hotelId := c.Locals("hotelId").(uint)
	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return hotelNotFound(c, hotelId)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func CreateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("createHotelInput").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var hotel model.Hotel
	copier.Copy(&hotel, &input)
	hotel.Slug = helper.GenerateUniqueHotelSlug(database.DB, hotel.Name, 0)

	if err := database.DB.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo crear el hotel", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

// CreateHotelCascade crea el hotel, sus habitaciones y sus servicios en una transacción
func CreateHotelCascade(c *fiber.Ctx) error {
	input, ok := c.Locals("cascadeHotelInput").(model.CreateHotelCascadeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var hotel model.Hotel
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		hotelInput := input.Hotel()
		copier.Copy(&hotel, &hotelInput)
		hotel.Slug = helper.GenerateUniqueHotelSlug(tx, hotel.Name, 0)
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}

		rooms := make([]model.Room, 0, len(input.Rooms))
		for _, r := range input.Rooms {
			rooms = append(rooms, model.Room{Number: r.Number, Type: r.Type, PricePerNight: *r.PricePerNight, HotelID: hotel.ID})
		}
		if len(rooms) > 0 {
			if err := tx.Create(&rooms).Error; err != nil {
				return err
			}
		}

		services := make([]model.Service, 0, len(input.Services))
		for _, s := range input.Services {
			var service model.Service
			copier.Copy(&service, &s)
			services = append(services, service)
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
			for _, s := range services {
				if err := tx.Create(&model.HotelService{HotelID: hotel.ID, ServiceID: s.ID}).Error; err != nil {
					return err
				}
			}
		}

		hotel.Rooms = rooms
		hotel.Services = services
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo crear el hotel", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

func EditHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("editHotelInput").(model.EditHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	hotelId := c.Locals("hotelId").(uint)

	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return hotelNotFound(c, hotelId)
	}

	previousName := hotel.Name
	copier.CopyWithOption(hotel, &input, copier.Option{IgnoreEmpty: true})
	if hotel.Name != previousName {
		hotel.Slug = helper.GenerateUniqueHotelSlug(database.DB, hotel.Name, hotel.ID)
	}

	if err := database.DB.Save(hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo actualizar el hotel", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

// DeleteHotel borra el hotel con sus habitaciones y vínculos; los huéspedes alojados quedan sin habitación
func DeleteHotel(c *fiber.Ctx) error {
	hotelId := c.Locals("hotelId").(uint)
	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return hotelNotFound(c, hotelId)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		roomIds := tx.Model(&model.Room{}).Select("id").Where("hotel_id = ?", hotel.ID)
		if err := tx.Model(&model.Guest{}).Where("room_id IN (?)", roomIds).Update("room_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&model.HotelService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&model.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(hotel).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No se pudo eliminar el hotel", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Hotel eliminado correctamente")
}

func GetHotelRooms(c *fiber.Ctx) error {
	hotelId := c.Locals("hotelId").(uint)
	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return hotelNotFound(c, hotelId)
	}

	var rooms []model.Room
	if err := database.DB.Where("hotel_id = ?", hotel.ID).Order("id ASC").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if len(rooms) == 0 {
		return utils.MessageResponse(c, fiber.StatusNotFound, "Este hotel no tiene habitaciones")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

func GetHotelServices(c *fiber.Ctx) error {
	hotelId := c.Locals("hotelId").(uint)
	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return hotelNotFound(c, hotelId)
	}

	var services []model.Service
	if err := database.DB.
		Joins("JOIN hotel_servicio ON hotel_servicio.servicio_id = servicios.id").
		Where("hotel_servicio.hotel_id = ?", hotel.ID).
		Order("servicios.id ASC").
		Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if len(services) == 0 {
		return utils.MessageResponse(c, fiber.StatusNotFound, "Este hotel no tiene servicios")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, services)
}

// loadHotelAndService resuelve los dos extremos del vínculo; si devuelve false la respuesta ya está escrita
func loadHotelAndService(c *fiber.Ctx) (*model.Hotel, *model.Service, bool, error) {
	hotelId := c.Locals("hotelId").(uint)
	serviceId := c.Locals("serviceId").(uint)

	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return nil, nil, false, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return nil, nil, false, hotelNotFound(c, hotelId)
	}
	service, err := first[model.Service](database.DB, serviceId)
	if err != nil {
		return nil, nil, false, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if service == nil {
		return nil, nil, false, serviceNotFound(c, serviceId)
	}
	return hotel, service, true, nil
}

func hotelHasService(db *gorm.DB, hotelId, serviceId uint) (bool, error) {
	var count int64
	err := db.Model(&model.HotelService{}).
		Where("hotel_id = ? AND servicio_id = ?", hotelId, serviceId).
		Count(&count).Error
	return count > 0, err
}

func AddHotelService(c *fiber.Ctx) error {
	hotel, service, ok, err := loadHotelAndService(c)
	if !ok {
		return err
	}

	linked, err := hotelHasService(database.DB, hotel.ID, service.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if linked {
		return utils.MessageResponse(c, fiber.StatusBadRequest, constants.SERVICE_ALREADY_LINK)
	}

	if err := database.DB.Create(&model.HotelService{HotelID: hotel.ID, ServiceID: service.ID}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo asociar el servicio", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Servicio asociado correctamente")
}

func RemoveHotelService(c *fiber.Ctx) error {
	hotel, service, ok, err := loadHotelAndService(c)
	if !ok {
		return err
	}

	linked, err := hotelHasService(database.DB, hotel.ID, service.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if !linked {
		return utils.MessageResponse(c, fiber.StatusBadRequest, constants.SERVICE_NOT_LINKED)
	}

	if err := database.DB.
		Where("hotel_id = ? AND servicio_id = ?", hotel.ID, service.ID).
		Delete(&model.HotelService{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo desasociar el servicio", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Servicio desasociado correctamente")
}

func GetHotelOccupancy(c *fiber.Ctx) error {
	hotelId := c.Locals("hotelId").(uint)
	hotel, err := first[model.Hotel](database.DB, hotelId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if hotel == nil {
		return hotelNotFound(c, hotelId)
	}

	summary, err := database.NewStore(database.DB).HotelOccupancy(c.UserContext(), *hotel)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
