package model

import "time"

type OccupancyEventType string

const (
	EventCheckin  OccupancyEventType = "checkin"
	EventCheckout OccupancyEventType = "checkout"
)

// OccupancyEvent se publica en el canal de la habitación tras cada check-in/check-out
type OccupancyEvent struct {
	Event     OccupancyEventType `json:"evento"`
	RoomID    uint               `json:"habitacion_id"`
	GuestID   uint               `json:"huesped_id"`
	Occupants int64              `json:"ocupantes"`
	Capacity  int                `json:"capacidad"`
	Available bool               `json:"disponible"`
	At        time.Time          `json:"fecha"`
}
