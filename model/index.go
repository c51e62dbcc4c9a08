package model

import "time"

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	AccountId uint   `json:"accountId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `query:"per_page" json:"per_page"`
	Page  *int `query:"page" json:"page"`
}
