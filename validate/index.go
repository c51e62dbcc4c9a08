package validate

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return model.RoomType(fl.Field().String()).Valid()
	})
	return v
}

// bind parsea y valida el body. Si devuelve false la respuesta ya está escrita.
func bind(c *fiber.Ctx, input any) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := validate.Struct(input); err != nil {
		return false, utils.ValidationErrorResponse(c, utils.ValidationMessages(err))
	}
	return true, nil
}

func paramId(c *fiber.Ctx, key string) (uint, bool) {
	value, err := strconv.ParseUint(c.Params(key), 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// GetById guarda cada parámetro numérico en Locals con su propio nombre
func GetById(keys ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, key := range keys {
			id, ok := paramId(c, key)
			if !ok {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
			}
			c.Locals(key, id)
		}
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
		}
		c.Locals("loginInput", input)
		return c.Next()
	}
}

func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RefreshInput
		// sin cuerpo se admite la cookie refresh_token
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
		}
		if input.RefreshToken == "" {
			input.RefreshToken = c.Cookies("refresh_token")
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SESSION, err)
		}
		c.Locals("refreshInput", input)
		return c.Next()
	}
}
