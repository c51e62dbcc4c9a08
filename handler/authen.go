package handler

import (
	"errors"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func setTokenCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(helper.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	if refreshToken == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(helper.RefreshTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func tokenClaim(account *model.Account) model.TokenClaim {
	return model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("loginInput").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	account, err := helper.GetUserByUsername(database.DB, input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil || !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("invalid credentials"))
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	accessToken, err := helper.GenerateAccessToken(tokenClaim(account))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	now := time.Now()
	session, err := helper.CreateSession(database.DB, account.ID, now)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setTokenCookies(c, accessToken, session.Token, now)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": session.Token,
		"account":      account,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	input, ok := c.Locals("refreshInput").(model.RefreshInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	now := time.Now()
	account, err := helper.ResolveSession(database.DB, input.RefreshToken, now)
	if err != nil {
		if errors.Is(err, helper.ErrInvalidSession) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_SESSION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accessToken, err := helper.GenerateAccessToken(tokenClaim(account))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setTokenCookies(c, accessToken, "", now)
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
	})
}

func Me(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("no claims"))
	}

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
