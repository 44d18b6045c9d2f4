package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetByNumber(ctx context.Context, number string) (*entity.Room, error)
	List(ctx context.Context, status *enum.RoomStatus) ([]entity.Room, error)
	// UpdateStatus transitions a room's status guarded by the expected
	// version. Returns false when the version no longer matches (a concurrent
	// transition won).
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus, fromVersion int64) (bool, error)
}

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	GetActiveByRoom(ctx context.Context, roomID uuid.UUID) (*entity.Reservation, error)
	List(ctx context.Context, status string) ([]entity.Reservation, error)
}
