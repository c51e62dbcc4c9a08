package model

type Service struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"nombre"`
	Description *string `gorm:"size:255" json:"descripcion"`
}

func (Service) TableName() string { return "servicios" }

// HotelService es la relación N:N hotel-servicio; la tabla es dueña del par
type HotelService struct {
	HotelID   uint    `gorm:"primaryKey;autoIncrement:false" json:"hotel_id"`
	ServiceID uint    `gorm:"primaryKey;autoIncrement:false;column:servicio_id" json:"servicio_id"`
	Hotel     Hotel   `gorm:"foreignKey:HotelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (HotelService) TableName() string { return "hotel_servicio" }

type CreateServiceInput struct {
	Name        string  `json:"nombre" validate:"required,max=100"`
	Description *string `json:"descripcion" validate:"omitempty,max=255"`
}

type EditServiceInput struct {
	Name        *string `json:"nombre" validate:"omitnil,min=1,max=100"`
	Description *string `json:"descripcion" validate:"omitnil,max=255"`
}
