package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

// RoomService handles room listing and the stay lifecycle around checkout
type RoomService struct {
	roomRepo        domainRepo.RoomRepository
	reservationRepo domainRepo.ReservationRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo domainRepo.RoomRepository, reservationRepo domainRepo.ReservationRepository) *RoomService {
	return &RoomService{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
	}
}

// List returns rooms, optionally filtered by status.
func (s *RoomService) List(ctx context.Context, status *enum.RoomStatus) ([]entity.Room, error) {
	return s.roomRepo.List(ctx, status)
}

// Get returns a room by ID.
func (s *RoomService) Get(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	return room, nil
}

// CheckInInput carries the front-desk check-in form.
type CheckInInput struct {
	RoomID     uuid.UUID
	GuestName  string
	GuestPhone string
	GuestEmail string
}

// CheckIn opens a reservation on an available room and occupies it.
func (s *RoomService) CheckIn(ctx context.Context, restaurantID uuid.UUID, input *CheckInInput) (*entity.Reservation, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "guest_name", Message: "Guest name is required"},
		})
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	if room.Status != enum.RoomStatusAvailable {
		return nil, apperror.NewBadRequestError("Room is not available")
	}

	ok, err := s.roomRepo.UpdateStatus(ctx, room.ID, enum.RoomStatusOccupied, room.Version)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrRoomStateConflict
	}

	reservation := &entity.Reservation{
		RestaurantID: restaurantID,
		RoomID:       room.ID,
		GuestName:    strings.TrimSpace(input.GuestName),
		GuestPhone:   strings.TrimSpace(input.GuestPhone),
		GuestEmail:   strings.TrimSpace(input.GuestEmail),
		CheckinAt:    time.Now(),
		Status:       entity.ReservationStatusActive,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// MarkCleaned moves a room from cleaning back to available.
func (s *RoomService) MarkCleaned(ctx context.Context, roomID uuid.UUID) (*entity.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	if room.Status != enum.RoomStatusCleaning {
		return nil, apperror.NewBadRequestError("Room is not being cleaned")
	}

	ok, err := s.roomRepo.UpdateStatus(ctx, room.ID, enum.RoomStatusAvailable, room.Version)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrRoomStateConflict
	}
	room.Status = enum.RoomStatusAvailable
	room.Version++
	return room, nil
}

// ActiveReservation returns the room's open reservation, if any.
func (s *RoomService) ActiveReservation(ctx context.Context, roomID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetActiveByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Active reservation")
	}
	return reservation, nil
}

// Reservations lists reservations, optionally filtered by status
// ("active" or "checked_out").
func (s *RoomService) Reservations(ctx context.Context, status string) ([]entity.Reservation, error) {
	return s.reservationRepo.List(ctx, strings.TrimSpace(status))
}

// Reservation returns a reservation by ID.
func (s *RoomService) Reservation(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation not found")
	}
	return reservation, nil
}
