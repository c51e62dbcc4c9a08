package database

import (
	"context"
	"errors"
	"hotel_manager/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implementa sobre gorm las operaciones que consume el flujo de reservas
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// FindGuest devuelve nil, nil si el huésped no existe
func (s *Store) FindGuest(ctx context.Context, id uint) (*model.Guest, error) {
	var guest model.Guest
	if err := s.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

// FindRoom devuelve nil, nil si la habitación no existe. Con lock la fila queda
// bloqueada (FOR UPDATE) hasta el fin de la transacción.
func (s *Store) FindRoom(ctx context.Context, id uint, lock bool) (*model.Room, error) {
	query := s.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room model.Room
	if err := query.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (s *Store) CountGuestsInRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Guest{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (s *Store) SaveGuest(ctx context.Context, guest *model.Guest) error {
	return s.db.WithContext(ctx).
		Model(guest).
		Select("room_id", "checkin_at", "checkout_at").
		Updates(guest).Error
}

func (s *Store) SaveRoom(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Save(room).Error
}

// CountGuestsByRoom agrupa los huéspedes alojados por habitación
func (s *Store) CountGuestsByRoom(ctx context.Context, roomIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(roomIDs))
	if len(roomIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		RoomID uint
		Total  int64
	}
	if err := s.db.WithContext(ctx).Model(&model.Guest{}).
		Select("room_id, COUNT(*) AS total").
		Where("room_id IN ?", roomIDs).
		Group("room_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.RoomID] = r.Total
	}
	return counts, nil
}

// HotelOccupancy calcula la ocupación actual de todas las habitaciones de un hotel
func (s *Store) HotelOccupancy(ctx context.Context, hotel model.Hotel) (model.HotelOccupancy, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotel.ID).Order("number ASC").Find(&rooms).Error; err != nil {
		return model.HotelOccupancy{}, err
	}
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	counts, err := s.CountGuestsByRoom(ctx, ids)
	if err != nil {
		return model.HotelOccupancy{}, err
	}

	summary := model.HotelOccupancy{
		HotelID:    hotel.ID,
		Name:       hotel.Name,
		TotalRooms: len(rooms),
		Rooms:      make([]model.RoomOccupancy, 0, len(rooms)),
	}
	for _, r := range rooms {
		occ := r.Occupancy(counts[r.ID])
		if occ.Occupants > 0 {
			summary.OccupiedRooms++
		}
		summary.Guests += occ.Occupants
		summary.Rooms = append(summary.Rooms, occ)
	}
	return summary, nil
}
