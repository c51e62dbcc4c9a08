package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"`
}

func (Account) TableName() string { return "cuentas" }

// Session guarda un refresh token opaco
type Session struct {
	DTO
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	AccountId uint      `gorm:"not null;index" json:"accountId"`
	Account   Account   `gorm:"foreignKey:AccountId;constraint:OnDelete:CASCADE" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
}

func (Session) TableName() string { return "sesiones" }

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN RECEPCIONISTA"`
}

type ChangePasswordInput struct {
	NewPassword    string `json:"newPassword" validate:"required,min=8,max=72"`
	RepeatPassword string `json:"repeatPassword" validate:"required"`
}

type ToggleActiveInput struct {
	Active *bool `json:"active" validate:"required"`
}

type FilterAccount struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Active    *bool  `query:"active"`
	Role      string `query:"role"`
}
