package handler

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func accountNotFound(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ACCOUNT_NOT_FOUND, err)
}

func GetAccounts(c *fiber.Ctx) error {
	filter := new(model.FilterAccount)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	return paginated[model.Account](c, filter.Pagination, func() *gorm.DB {
		query := database.DB.Model(&model.Account{})
		query = likeFilter(query, "username", filter.SearchKey)
		if filter.Active != nil {
			query = query.Where("active = ?", *filter.Active)
		}
		if filter.Role != "" {
			query = query.Where("role = ?", strings.ToUpper(filter.Role))
		}
		return query
	})
}

func CreateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("createAccountInput").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hash,
		Active:   true,
		Role:     input.Role,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo crear la cuenta", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("changePasswordInput").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	accountId := c.Locals("accountId").(uint)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return accountNotFound(c, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	account.Password = hash

	// las sesiones abiertas dejan de valer con la contraseña anterior
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&account).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ?", account.ID).Delete(&model.Session{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo cambiar la contraseña", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func ToggleActiveAccount(c *fiber.Ctx) error {
	isActive := c.Locals("isActive").(bool)
	accountId := c.Locals("accountId").(uint)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return accountNotFound(c, err)
	}

	account.Active = isActive
	// al desactivar también se cierran sus sesiones
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&account).Update("active", isActive).Error; err != nil {
			return err
		}
		if isActive {
			return nil
		}
		return tx.Where("account_id = ?", account.ID).Delete(&model.Session{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo actualizar la cuenta", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
