package model

type RoomType string

const (
	Simple RoomType = "simple"
	Doble  RoomType = "doble"
)

// Capacidad máxima por tipo. Tipos desconocidos o heredados cuentan como 1.
var roomCapacities = map[RoomType]int{
	Simple: 1,
	Doble:  2,
}

const defaultRoomCapacity = 1

func (t RoomType) Capacity() int {
	if c, ok := roomCapacities[t]; ok {
		return c
	}
	return defaultRoomCapacity
}

func (t RoomType) Valid() bool {
	_, ok := roomCapacities[t]
	return ok
}

type Room struct {
	DTO
	Number        string   `gorm:"size:20;not null;uniqueIndex:idx_habitacion_hotel_numero" json:"numero"`
	Type          RoomType `gorm:"size:50;not null" json:"tipo"`
	PricePerNight float64  `gorm:"not null;default:0" json:"precioNoche"`
	HotelID       uint     `gorm:"not null;uniqueIndex:idx_habitacion_hotel_numero" json:"hotel_id"`
	Hotel         *Hotel   `gorm:"foreignKey:HotelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"hotel,omitempty"`
}

func (Room) TableName() string { return "habitaciones" }

// IsAvailable indica si la habitación admite un huésped más con occupants ya dentro
func (r Room) IsAvailable(occupants int64) bool {
	return occupants < int64(r.Type.Capacity())
}

func (r Room) Occupancy(occupants int64) RoomOccupancy {
	return RoomOccupancy{
		RoomID:    r.ID,
		Number:    r.Number,
		Type:      r.Type,
		Capacity:  r.Type.Capacity(),
		Occupants: occupants,
		Available: r.IsAvailable(occupants),
	}
}

type CreateRoomInput struct {
	Number        string   `json:"numero" validate:"required,max=20"`
	Type          RoomType `json:"tipo" validate:"required,roomtype"`
	PricePerNight *float64 `json:"precioNoche" validate:"required,min=0"`
	HotelID       uint     `json:"hotel_id" validate:"required"`
}

type BulkRoomInput struct {
	Rooms []CreateRoomInput `json:"habitaciones" validate:"required,min=1,dive"`
}

type EditRoomInput struct {
	Number        *string   `json:"numero" validate:"omitnil,min=1,max=20"`
	Type          *RoomType `json:"tipo" validate:"omitnil,roomtype"`
	PricePerNight *float64  `json:"precioNoche" validate:"omitnil,min=0"`
	HotelID       *uint     `json:"hotel_id" validate:"omitnil,min=1"`
}
