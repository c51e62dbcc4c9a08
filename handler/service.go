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

func serviceNotFound(c *fiber.Ctx, serviceId uint) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("El servicio con ID %d no existe.", serviceId), helper.ErrNotFound)
}

func GetServices(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	return paginated[model.Service](c, *pagination, func() *gorm.DB {
		return database.DB.Model(&model.Service{})
	})
}

func GetAllServices(c *fiber.Ctx) error {
	return all[model.Service](c)
}

func GetServiceById(c *fiber.Ctx) error {
	serviceId := c.Locals("serviceId").(uint)
	service, err := first[model.Service](database.DB, serviceId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if service == nil {
		return serviceNotFound(c, serviceId)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func CreateService(c *fiber.Ctx) error {
	input, ok := c.Locals("createServiceInput").(model.CreateServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var service model.Service
	copier.Copy(&service, &input)
	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo crear el servicio", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func EditService(c *fiber.Ctx) error {
	input, ok := c.Locals("editServiceInput").(model.EditServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	serviceId := c.Locals("serviceId").(uint)

	service, err := first[model.Service](database.DB, serviceId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if service == nil {
		return serviceNotFound(c, serviceId)
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = utils.StringPtr(*input.Description)
	}
	if err := database.DB.Save(service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo actualizar el servicio", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func DeleteService(c *fiber.Ctx) error {
	serviceId := c.Locals("serviceId").(uint)
	service, err := first[model.Service](database.DB, serviceId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if service == nil {
		return serviceNotFound(c, serviceId)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("servicio_id = ?", service.ID).Delete(&model.HotelService{}).Error; err != nil {
			return err
		}
		return tx.Delete(service).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No se pudo eliminar el servicio", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Servicio eliminado correctamente")
}

func GetServiceHotels(c *fiber.Ctx) error {
	serviceId := c.Locals("serviceId").(uint)
	service, err := first[model.Service](database.DB, serviceId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if service == nil {
		return serviceNotFound(c, serviceId)
	}

	var hotels []model.Hotel
	if err := database.DB.
		Joins("JOIN hotel_servicio ON hotel_servicio.hotel_id = hoteles.id").
		Where("hotel_servicio.servicio_id = ?", service.ID).
		Order("hoteles.id ASC").
		Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	if len(hotels) == 0 {
		return utils.MessageResponse(c, fiber.StatusNotFound, "Este servicio no está asociado a ningún hotel")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotels)
}
