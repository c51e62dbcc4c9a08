package model

import "time"

type Guest struct {
	DTO
	FirstName  string     `gorm:"size:100;not null" json:"nombre"`
	LastName   string     `gorm:"size:100;not null" json:"apellido"`
	Document   string     `gorm:"size:50;uniqueIndex;not null" json:"dniPasaporte"`
	CheckinAt  *time.Time `json:"fechaCheckin"`
	CheckoutAt *time.Time `json:"fechaCheckout"`
	RoomID     *uint      `gorm:"index" json:"habitacion_id"`
	Room       *Room      `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"habitacion,omitempty"`
}

func (Guest) TableName() string { return "huespedes" }

func (g Guest) CheckedIn() bool {
	return g.RoomID != nil
}

type CreateGuestInput struct {
	FirstName string `json:"nombre" validate:"required,max=100"`
	LastName  string `json:"apellido" validate:"required,max=100"`
	Document  string `json:"dniPasaporte" validate:"required,max=50"`
}

type EditGuestInput struct {
	FirstName *string `json:"nombre" validate:"omitnil,min=1,max=100"`
	LastName  *string `json:"apellido" validate:"omitnil,min=1,max=100"`
	Document  *string `json:"dniPasaporte" validate:"omitnil,min=1,max=50"`
}
