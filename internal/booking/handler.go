package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hotelbooking/internal/api"
	"hotelbooking/internal/auth"
	"hotelbooking/internal/logger"
	"hotelbooking/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Notifier is told about bookings once they are persisted.
type Notifier interface {
	BookingCreated(ctx context.Context, b *Booking) error
}

type Handler struct {
	service     Service
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	notifier    Notifier
}

func NewHandler(service Service, roomRepo RoomRepository, bookingRepo BookingRepository, notifier Notifier) *Handler {
	return &Handler{
		service:     service,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}
}

// CreateBooking godoc
// @Summary      Book a room
// @Description  Places the stay into the first room that is free for every night of it.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Stay dates"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	customerID, exists := auth.GetCustomerID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Customer not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindError(c, err)
		return
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		metrics.RecordBookingAttempt(metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b := &Booking{StartDate: start, EndDate: end, CustomerID: customerID}
	ok, err := h.service.CreateBooking(c.Request.Context(), b)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			metrics.RecordBookingAttempt(metrics.OutcomeInvalid)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		metrics.RecordBookingAttempt(metrics.OutcomeError)
		logger.Error("Failed to create booking", "error", err, "customer_id", customerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		return
	}

	if !ok {
		metrics.RecordBookingAttempt(metrics.OutcomeUnavailable)
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "The booking could not be created. All rooms are occupied. Please try another period."})
		return
	}

	metrics.RecordBookingAttempt(metrics.OutcomeAccepted)
	logger.Info("Booking created", "booking_id", b.ID, "room_id", b.RoomID, "customer_id", b.CustomerID)

	if h.notifier != nil {
		if err := h.notifier.BookingCreated(c.Request.Context(), b); err != nil {
			logger.Warn("Failed to publish booking event", "error", err, "booking_id", b.ID)
		}
	}

	c.JSON(http.StatusCreated, b)
}

// FindAvailableRoom godoc
// @Summary      Find a free room
// @Description  Returns the first room free for the whole stay, or room_id -1 when none is.
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Param        start  query     string  true  "First night (YYYY-MM-DD)"
// @Param        end    query     string  true  "Last night (YYYY-MM-DD)"
// @Success      200    {object}  AvailableRoomResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /rooms/available [get]
func (h *Handler) FindAvailableRoom(c *gin.Context) {
	start, end, err := parseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		metrics.RecordAvailabilitySearch(metrics.SearchInvalid)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	roomID, err := h.service.FindAvailableRoom(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			metrics.RecordAvailabilitySearch(metrics.SearchInvalid)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		metrics.RecordAvailabilitySearch(metrics.SearchError)
		logger.Error("Failed to search rooms", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to search rooms"})
		return
	}

	available := roomID != NoRoomAvailable
	if available {
		metrics.RecordAvailabilitySearch(metrics.SearchFound)
	} else {
		metrics.RecordAvailabilitySearch(metrics.SearchNone)
	}

	c.JSON(http.StatusOK, AvailableRoomResponse{RoomID: roomID, Available: available})
}

// GetFullyOccupiedDates godoc
// @Summary      Fully occupied dates
// @Description  Lists the dates in the range on which no room is free.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        start  query     string  true  "First date (YYYY-MM-DD)"
// @Param        end    query     string  true  "Last date (YYYY-MM-DD)"
// @Success      200    {object}  OccupiedDatesResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /bookings/occupied [get]
func (h *Handler) GetFullyOccupiedDates(c *gin.Context) {
	start, end, err := parseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	dates, err := h.service.GetFullyOccupiedDates(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute occupancy", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute occupancy"})
		return
	}
	metrics.RecordOccupancyQuery()

	resp := OccupiedDatesResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Format(DateLayout))
	}

	c.JSON(http.StatusOK, resp)
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Room
// @Failure      500  {object}  api.ErrorResponse
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.roomRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// CreateRoom godoc
// @Summary      Add a room
// @Description  Adds a room to the inventory. Admin only.
// @Tags         rooms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRoomRequest  true  "Room"
// @Success      201      {object}  Room
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondWithBindError(c, err)
		return
	}

	room := &Room{Description: req.Description}
	if err := h.roomRepo.Add(c.Request.Context(), room); err != nil {
		logger.Error("Failed to create room", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Returns every booking, active or not. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Booking
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

var errMissingDates = errors.New("start and end dates are required")

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errMissingDates
	}

	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date format, use YYYY-MM-DD")
	}

	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date format, use YYYY-MM-DD")
	}

	return start, end, nil
}
