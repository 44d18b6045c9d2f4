package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

func newRoomFixture(status enum.RoomStatus, casFail bool) (*RoomService, *entity.Room) {
	room := &entity.Room{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		Number:       "204",
		DailyRate:    250000,
		Status:       status,
		Version:      2,
	}
	svc := NewRoomService(
		&fakeRoomRepo{room: room, casFail: casFail},
		&fakeReservationRepo{},
	)
	return svc, room
}

func TestCheckInOpensReservation(t *testing.T) {
	svc, room := newRoomFixture(enum.RoomStatusAvailable, false)

	reservation, err := svc.CheckIn(context.Background(), room.RestaurantID, &CheckInInput{
		RoomID:    room.ID,
		GuestName: "  Asha Kulkarni ",
	})
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if reservation.GuestName != "Asha Kulkarni" {
		t.Fatalf("guest name not trimmed: %q", reservation.GuestName)
	}
	if reservation.Status != entity.ReservationStatusActive {
		t.Fatalf("reservation status = %q, want %q", reservation.Status, entity.ReservationStatusActive)
	}
	if reservation.RoomID != room.ID {
		t.Fatalf("reservation bound to wrong room")
	}
}

func TestCheckInLostRaceReportsRoomStateConflict(t *testing.T) {
	svc, room := newRoomFixture(enum.RoomStatusAvailable, true)

	_, err := svc.CheckIn(context.Background(), room.RestaurantID, &CheckInInput{
		RoomID:    room.ID,
		GuestName: "Asha Kulkarni",
	})
	if !errors.Is(err, apperror.ErrRoomStateConflict) {
		t.Fatalf("CheckIn() error = %v, want ErrRoomStateConflict", err)
	}
	if errors.Is(err, apperror.ErrCheckoutConflict) {
		t.Fatalf("check-in contention must not report a checkout conflict")
	}
}

func TestMarkCleanedLostRaceReportsRoomStateConflict(t *testing.T) {
	svc, room := newRoomFixture(enum.RoomStatusCleaning, true)

	_, err := svc.MarkCleaned(context.Background(), room.ID)
	if !errors.Is(err, apperror.ErrRoomStateConflict) {
		t.Fatalf("MarkCleaned() error = %v, want ErrRoomStateConflict", err)
	}
}

func TestMarkCleanedAdvancesRoom(t *testing.T) {
	svc, room := newRoomFixture(enum.RoomStatusCleaning, false)

	got, err := svc.MarkCleaned(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("MarkCleaned() error = %v", err)
	}
	if got.Status != enum.RoomStatusAvailable {
		t.Fatalf("room status = %v, want available", got.Status)
	}
	if got.Version != 3 {
		t.Fatalf("room version = %d, want 3", got.Version)
	}
}
