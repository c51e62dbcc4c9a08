package handler

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// first devuelve nil, nil cuando el registro no existe
func first[T any](db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// paginated responde con ResponseCustom; query se llama dos veces (count y página)
func paginated[T any](c *fiber.Ctx, pagination model.Pagination, query func() *gorm.DB) error {
	var total int64
	if err := query().Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	limit, page := utils.NormalizePagination(pagination.Limit, pagination.Page)
	rows := make([]T, 0)
	if err := utils.ApplyPagination(query(), limit, page).Order("id ASC").Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      limit,
		Page:       page,
		TotalCount: total,
	})
}

func all[T any](c *fiber.Ctx) error {
	rows := make([]T, 0)
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY_DATABASE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func likeFilter(query *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return query
	}
	return query.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}
