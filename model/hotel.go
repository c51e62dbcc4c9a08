package model

type Hotel struct {
	DTO
	Name     string    `gorm:"size:50;not null" json:"nombre"`
	Address  string    `gorm:"size:100;uniqueIndex;not null" json:"direccion"`
	Phone    string    `gorm:"size:20;uniqueIndex;not null" json:"telefono"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Website  string    `gorm:"uniqueIndex;not null" json:"sitioWeb"`
	Slug     string    `gorm:"uniqueIndex" json:"slug"`
	Rooms    []Room    `gorm:"foreignKey:HotelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"habitaciones,omitempty"`
	Services []Service `gorm:"-" json:"servicios,omitempty"`
}

func (Hotel) TableName() string { return "hoteles" }

type CreateHotelInput struct {
	Name    string `json:"nombre" validate:"required,min=5,max=50"`
	Address string `json:"direccion" validate:"required,min=5,max=100"`
	Phone   string `json:"telefono" validate:"required,max=20"`
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"sitioWeb" validate:"required,url"`
}

type EditHotelInput struct {
	Name    *string `json:"nombre" validate:"omitnil,min=5,max=50"`
	Address *string `json:"direccion" validate:"omitnil,min=5,max=100"`
	Phone   *string `json:"telefono" validate:"omitnil,min=1,max=20"`
	Email   *string `json:"email" validate:"omitnil,email"`
	Website *string `json:"sitioWeb" validate:"omitnil,url"`
}

// Alta de un hotel con sus habitaciones y servicios en una sola petición
type CreateHotelCascadeInput struct {
	Name     string               `json:"nombre" validate:"required,min=5,max=50"`
	Address  string               `json:"direccion" validate:"required,min=5,max=100"`
	Phone    string               `json:"telefono" validate:"required,max=20"`
	Email    string               `json:"email" validate:"required,email"`
	Website  string               `json:"sitioWeb" validate:"required,url"`
	Rooms    []CascadeRoomInput   `json:"habitaciones" validate:"omitempty,dive"`
	Services []CreateServiceInput `json:"servicios" validate:"omitempty,dive"`
}

func (in CreateHotelCascadeInput) Hotel() CreateHotelInput {
	return CreateHotelInput{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
		Website: in.Website,
	}
}

type CascadeRoomInput struct {
	Number        string   `json:"numero" validate:"required,max=20"`
	Type          RoomType `json:"tipo" validate:"required,roomtype"`
	PricePerNight *float64 `json:"precioNoche" validate:"required,min=0"`
}

type FilterHotel struct {
	Pagination
	Name    string `query:"nombre"`
	Address string `query:"direccion"`
	Phone   string `query:"telefono"`
	Email   string `query:"email"`
	Website string `query:"sitioWeb"`
}

// Ocupación de una habitación en un momento dado
type RoomOccupancy struct {
	RoomID    uint     `json:"habitacion_id"`
	Number    string   `json:"numero"`
	Type      RoomType `json:"tipo"`
	Capacity  int      `json:"capacidad"`
	Occupants int64    `json:"ocupantes"`
	Available bool     `json:"disponible"`
}

type HotelOccupancy struct {
	HotelID       uint            `json:"hotel_id"`
	Name          string          `json:"nombre"`
	TotalRooms    int             `json:"totalHabitaciones"`
	OccupiedRooms int             `json:"habitacionesOcupadas"`
	Guests        int64           `json:"huespedes"`
	Rooms         []RoomOccupancy `json:"habitaciones"`
}
