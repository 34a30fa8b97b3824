package booking

import (
	"context"
	"errors"
	"time"
)

// NoRoomAvailable is returned by FindAvailableRoom when every room is taken.
const NoRoomAvailable = -1

var (
	ErrInvalidDateRange = errors.New("the start date cannot be in the past or later than the end date")
	ErrBookingRequired  = errors.New("booking is required")
)

type Service interface {
	CreateBooking(ctx context.Context, booking *Booking) (bool, error)
	FindAvailableRoom(ctx context.Context, startDate, endDate time.Time) (int, error)
	GetFullyOccupiedDates(ctx context.Context, startDate, endDate time.Time) ([]time.Time, error)
}

type service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	clock       Clock
}

func NewService(roomRepo RoomRepository, bookingRepo BookingRepository, clock Clock) Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

// validateStay rejects stays that start today or earlier, or end before they start.
func (s *service) validateStay(startDate, endDate time.Time) error {
	today := Day(s.clock.Now())
	start := Day(startDate)
	if !start.After(today) || start.After(Day(endDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// CreateBooking places the booking into the first free room and persists it.
// The read and the write are not atomic: two concurrent callers may both see
// the same room as free. Serializing attempts is up to the store.
func (s *service) CreateBooking(ctx context.Context, booking *Booking) (bool, error) {
	if booking == nil {
		return false, ErrBookingRequired
	}
	if err := s.validateStay(booking.StartDate, booking.EndDate); err != nil {
		return false, err
	}

	roomID, err := s.FindAvailableRoom(ctx, booking.StartDate, booking.EndDate)
	if err != nil {
		return false, err
	}
	if roomID == NoRoomAvailable {
		return false, nil
	}

	booking.RoomID = roomID
	booking.IsActive = true
	if err := s.bookingRepo.Add(ctx, booking); err != nil {
		return false, err
	}

	return true, nil
}

func (s *service) FindAvailableRoom(ctx context.Context, startDate, endDate time.Time) (int, error) {
	if err := s.validateStay(startDate, endDate); err != nil {
		return NoRoomAvailable, err
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return NoRoomAvailable, err
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return NoRoomAvailable, err
	}

	byRoom := make(map[int][]Booking)
	for _, b := range bookings {
		if b.IsActive {
			byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
		}
	}

	for _, room := range rooms {
		if isFree(byRoom[room.ID], startDate, endDate) {
			return room.ID, nil
		}
	}

	return NoRoomAvailable, nil
}

func isFree(bookings []Booking, startDate, endDate time.Time) bool {
	for _, b := range bookings {
		if b.Overlaps(startDate, endDate) {
			return false
		}
	}
	return true
}

// GetFullyOccupiedDates lists the days in [startDate, endDate] on which the
// number of active bookings reaches the room count. Bookings are counted, not
// distinct rooms, so two active bookings on one room fill two slots.
func (s *service) GetFullyOccupiedDates(ctx context.Context, startDate, endDate time.Time) ([]time.Time, error) {
	start, end := Day(startDate), Day(endDate)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dates := []time.Time{}
	if len(bookings) == 0 {
		return dates, nil
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		occupied := 0
		for _, b := range bookings {
			if b.IsActive && b.Covers(d) {
				occupied++
			}
		}
		if occupied >= len(rooms) {
			dates = append(dates, d)
		}
	}

	return dates, nil
}
