package booking

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type Room struct {
	ID          int    `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
}

type Customer struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// Booking is an inclusive stay from StartDate to EndDate. Only active
// bookings take part in availability and occupancy calculations.
type Booking struct {
	ID         int       `db:"id" json:"id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CustomerID int       `db:"customer_id" json:"customer_id"`
	RoomID     int       `db:"room_id" json:"room_id"`
}

// Covers reports whether day falls inside the booking, both ends included.
func (b Booking) Covers(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(b.StartDate)) && !d.After(Day(b.EndDate))
}

// Overlaps reports whether [start, end] shares at least one day with the
// booking. A stay ending on the booking's first day overlaps it.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !(Day(end).Before(Day(b.StartDate)) || Day(start).After(Day(b.EndDate)))
}

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type CreateBookingRequest struct {
	StartDate string `json:"start_date" binding:"required" example:"2026-11-02"`
	EndDate   string `json:"end_date" binding:"required" example:"2026-11-05"`
}

type CreateRoomRequest struct {
	Description string `json:"description" binding:"required,max=255" example:"Double room, sea view"`
}

type AvailableRoomResponse struct {
	RoomID    int  `json:"room_id" example:"1"`
	Available bool `json:"available" example:"true"`
}

type OccupiedDatesResponse struct {
	Dates []string `json:"dates"`
}
