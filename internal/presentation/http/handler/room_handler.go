package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/application/service"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/request"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/response"
)

// RoomHandler handles room and reservation HTTP requests
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// List returns rooms, optionally filtered by ?status=
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param status query string false "Room status filter (available|occupied|cleaning)"
// @Success 200 {object} response.APIResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var status *enum.RoomStatus
	if s := c.Query("status"); s != "" {
		parsed, ok := enum.ParseRoomStatus(s)
		if !ok {
			response.BadRequest(c, "Invalid room status")
			return
		}
		status = &parsed
	}

	rooms, err := h.roomService.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Rooms retrieved", rooms)
}

// Get returns a room by ID
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.APIResponse
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Room retrieved", room)
}

// CheckIn opens a reservation on an available room
// @Summary Check in a guest
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body request.CheckInRequest true "Check-in data"
// @Success 201 {object} response.APIResponse
// @Router /reservations [post]
func (h *RoomHandler) CheckIn(c *gin.Context) {
	var req request.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	restaurantID := GetRestaurantID(c)
	if restaurantID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	reservation, err := h.roomService.CheckIn(c.Request.Context(), *restaurantID, &service.CheckInInput{
		RoomID:     roomID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Guest checked in", reservation)
}

// ActiveReservation returns the open reservation for a room
// @Summary Active reservation for a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.APIResponse
// @Router /rooms/{id}/reservation [get]
func (h *RoomHandler) ActiveReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	reservation, err := h.roomService.ActiveReservation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reservation retrieved", reservation)
}

// MarkCleaned transitions a room from cleaning to available
// @Summary Mark room cleaned
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.APIResponse
// @Router /rooms/{id}/cleaned [post]
func (h *RoomHandler) MarkCleaned(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.MarkCleaned(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Room marked available", room)
}

// ListReservations returns reservations, optionally filtered by status
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param status query string false "Reservation status filter"
// @Success 200 {object} response.APIResponse
// @Router /reservations [get]
func (h *RoomHandler) ListReservations(c *gin.Context) {
	reservations, err := h.roomService.Reservations(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reservations retrieved", reservations)
}

// GetReservation returns a reservation by ID
// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /reservations/{id} [get]
func (h *RoomHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID")
		return
	}

	reservation, err := h.roomService.Reservation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reservation retrieved", reservation)
}
