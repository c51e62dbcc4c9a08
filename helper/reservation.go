package helper

import (
	"context"
	"errors"
	"fmt"
	"hotel_manager/database"
	"hotel_manager/model"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	EntityHotel   = "hotel"
	EntityRoom    = "habitación"
	EntityGuest   = "huésped"
	EntityService = "servicio"
)

var (
	ErrNotFound        = errors.New("no encontrado")
	ErrRoomUnavailable = errors.New("la habitación no está disponible")
)

// NotFoundError indica qué entidad falta; errors.Is(err, ErrNotFound) es true
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %d no existe", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ReservationStore es lo que el flujo de reservas necesita del almacenamiento.
// FindGuest y FindRoom devuelven nil, nil cuando el registro no existe.
type ReservationStore interface {
	Transaction(ctx context.Context, fn func(tx ReservationStore) error) error
	FindGuest(ctx context.Context, id uint) (*model.Guest, error)
	FindRoom(ctx context.Context, id uint, lock bool) (*model.Room, error)
	CountGuestsInRoom(ctx context.Context, roomID uint) (int64, error)
	SaveGuest(ctx context.Context, guest *model.Guest) error
}

type gormReservationStore struct {
	*database.Store
}

func NewGormReservationStore(db *gorm.DB) ReservationStore {
	return gormReservationStore{database.NewStore(db)}
}

func (s gormReservationStore) Transaction(ctx context.Context, fn func(tx ReservationStore) error) error {
	return s.Store.Transaction(ctx, func(tx *database.Store) error {
		return fn(gormReservationStore{tx})
	})
}

type Reservations struct {
	Store ReservationStore
	// Feed puede ser nil: sin Redis no se publican eventos
	Feed OccupancyPublisher
	Now  func() time.Time
}

func NewReservations(store ReservationStore, feed OccupancyPublisher) *Reservations {
	return &Reservations{Store: store, Feed: feed, Now: time.Now}
}

// DefaultReservations usa la base de datos dada y el feed de Redis si está conectado
func DefaultReservations(db *gorm.DB) *Reservations {
	var feed OccupancyPublisher
	if f := OccupancyFeed(); f != nil {
		feed = f
	}
	return NewReservations(NewGormReservationStore(db), feed)
}

func (r *Reservations) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Availability devuelve la ocupación actual de la habitación
func (r *Reservations) Availability(ctx context.Context, roomID uint) (model.RoomOccupancy, error) {
	room, err := r.Store.FindRoom(ctx, roomID, false)
	if err != nil {
		return model.RoomOccupancy{}, fmt.Errorf("buscar habitación: %w", err)
	}
	if room == nil {
		return model.RoomOccupancy{}, &NotFoundError{Entity: EntityRoom, ID: roomID}
	}
	occupants, err := r.Store.CountGuestsInRoom(ctx, room.ID)
	if err != nil {
		return model.RoomOccupancy{}, fmt.Errorf("contar huéspedes: %w", err)
	}
	return room.Occupancy(occupants), nil
}

// IsAvailable indica si la habitación admite un huésped más
func (r *Reservations) IsAvailable(ctx context.Context, roomID uint) (bool, error) {
	occupancy, err := r.Availability(ctx, roomID)
	if err != nil {
		return false, err
	}
	return occupancy.Available, nil
}

// Reserve asigna el huésped a la habitación. La comprobación de capacidad y la
// escritura van en la misma transacción con la habitación bloqueada.
func (r *Reservations) Reserve(ctx context.Context, guestID, roomID uint) (*model.Guest, error) {
	var (
		reserved *model.Guest
		event    model.OccupancyEvent
	)
	err := r.Store.Transaction(ctx, func(tx ReservationStore) error {
		guest, err := tx.FindGuest(ctx, guestID)
		if err != nil {
			return fmt.Errorf("buscar huésped: %w", err)
		}
		if guest == nil {
			return &NotFoundError{Entity: EntityGuest, ID: guestID}
		}
		room, err := tx.FindRoom(ctx, roomID, true)
		if err != nil {
			return fmt.Errorf("buscar habitación: %w", err)
		}
		if room == nil {
			return &NotFoundError{Entity: EntityRoom, ID: roomID}
		}

		occupants, err := tx.CountGuestsInRoom(ctx, room.ID)
		if err != nil {
			return fmt.Errorf("contar huéspedes: %w", err)
		}
		if !room.IsAvailable(occupants) {
			return ErrRoomUnavailable
		}

		now := r.now()
		id := room.ID
		guest.RoomID = &id
		guest.CheckinAt = &now
		if err := tx.SaveGuest(ctx, guest); err != nil {
			return fmt.Errorf("guardar huésped: %w", err)
		}

		reserved = guest
		event = occupancyEvent(model.EventCheckin, *room, guest.ID, occupants+1, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, event)
	return reserved, nil
}

// Checkout marca la salida y libera la habitación, tenga o no una asignada
func (r *Reservations) Checkout(ctx context.Context, guestID uint) (*model.Guest, error) {
	var (
		checkedOut *model.Guest
		event      *model.OccupancyEvent
	)
	err := r.Store.Transaction(ctx, func(tx ReservationStore) error {
		guest, err := tx.FindGuest(ctx, guestID)
		if err != nil {
			return fmt.Errorf("buscar huésped: %w", err)
		}
		if guest == nil {
			return &NotFoundError{Entity: EntityGuest, ID: guestID}
		}

		previousRoom := guest.RoomID
		now := r.now()
		guest.CheckoutAt = &now
		guest.RoomID = nil
		if err := tx.SaveGuest(ctx, guest); err != nil {
			return fmt.Errorf("guardar huésped: %w", err)
		}
		checkedOut = guest

		if previousRoom == nil {
			return nil
		}
		room, err := tx.FindRoom(ctx, *previousRoom, false)
		if err != nil {
			return fmt.Errorf("buscar habitación: %w", err)
		}
		if room == nil {
			return nil
		}
		occupants, err := tx.CountGuestsInRoom(ctx, room.ID)
		if err != nil {
			return fmt.Errorf("contar huéspedes: %w", err)
		}
		ev := occupancyEvent(model.EventCheckout, *room, guest.ID, occupants, now)
		event = &ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		r.publish(ctx, *event)
	}
	return checkedOut, nil
}

func (r *Reservations) publish(ctx context.Context, event model.OccupancyEvent) {
	if r.Feed == nil {
		return
	}
	if err := r.Feed.PublishOccupancy(ctx, event); err != nil {
		log.Printf("No se pudo publicar el evento %s de la habitación %d: %v", event.Event, event.RoomID, err)
	}
}

func occupancyEvent(kind model.OccupancyEventType, room model.Room, guestID uint, occupants int64, at time.Time) model.OccupancyEvent {
	return model.OccupancyEvent{
		Event:     kind,
		RoomID:    room.ID,
		GuestID:   guestID,
		Occupants: occupants,
		Capacity:  room.Type.Capacity(),
		Available: room.IsAvailable(occupants),
		At:        at,
	}
}
