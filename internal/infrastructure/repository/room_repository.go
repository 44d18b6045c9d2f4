package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domainRepo.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) GetByNumber(ctx context.Context, number string) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		First(&room, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) List(ctx context.Context, status *enum.RoomStatus) ([]entity.Room, error) {
	var rooms []entity.Room
	query := r.db.WithContext(ctx).Scopes(RestaurantScope(ctx))
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("number ASC").Find(&rooms).Error
	return rooms, err
}

// UpdateStatus performs a compare-and-swap on the room's version so two
// concurrent checkout attempts for the same room cannot both succeed.
func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus, fromVersion int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Room{}).
		Where("id = ? AND version = ?", id, fromVersion).
		Updates(map[string]interface{}{
			"status":  status,
			"version": fromVersion + 1,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) domainRepo.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Room").
		First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reservation, err
}

func (r *reservationRepository) GetActiveByRoom(ctx context.Context, roomID uuid.UUID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("room_id = ? AND status = ?", roomID, entity.ReservationStatusActive).
		Order("checkin_at DESC").
		First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reservation, err
}

func (r *reservationRepository) List(ctx context.Context, status string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	query := r.db.WithContext(ctx).Scopes(RestaurantScope(ctx)).Preload("Room")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("checkin_at DESC").Find(&reservations).Error
	return reservations, err
}
