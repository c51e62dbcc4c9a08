package utils

import (
	"hotel_manager/constants"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = ""
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// NormalizePagination aplica page=1 y per_page=10 cuando faltan o no son válidos
func NormalizePagination(limit, page *int) (*int, *int) {
	if limit == nil || *limit <= 0 {
		limit = Ptr(constants.DEFAULT_PAGE_SIZE)
	}
	if page == nil || *page < 1 {
		page = Ptr(1)
	}
	return limit, page
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
