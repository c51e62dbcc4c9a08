package helper

import (
	"errors"
	"fmt"
	"hotel_manager/config"
	"hotel_manager/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidSession = errors.New("sesión inválida o caducada")

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GetUserByUsername(db *gorm.DB, u string) (*model.Account, error) {
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(AccessTokenTTL).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetInfoAccountFromToken lee los claims que middleware.Protected dejó en Locals
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	accountId, _ := claims["accountId"].(float64)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return model.TokenClaim{AccountId: uint(accountId), Username: username, Role: role}, true
}

// CreateSession guarda un refresh token opaco para la cuenta
func CreateSession(db *gorm.DB, accountId uint, now time.Time) (*model.Session, error) {
	session := &model.Session{
		Token:     uuid.NewString(),
		AccountId: accountId,
		ExpiresAt: now.Add(RefreshTokenTTL),
	}
	if err := db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// ResolveSession devuelve la cuenta activa dueña del refresh token
func ResolveSession(db *gorm.DB, token string, now time.Time) (*model.Account, error) {
	var session model.Session
	if err := db.Preload("Account").Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if !session.ExpiresAt.After(now) || !session.Account.Active {
		return nil, ErrInvalidSession
	}
	return &session.Account, nil
}

func PurgeExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at <= ?", now).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
