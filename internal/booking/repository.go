package booking

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type roomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetAll(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, description
		FROM rooms
		ORDER BY id
	`

	rooms := []Room{}
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepository) Add(ctx context.Context, room *Room) error {
	query := `
		INSERT INTO rooms (description)
		VALUES ($1)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query, room.Description).Scan(&room.ID)
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]Booking, error) {
	query := `
		SELECT id, start_date, end_date, is_active, customer_id, room_id
		FROM bookings
		ORDER BY id
	`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) Add(ctx context.Context, booking *Booking) error {
	query := `
		INSERT INTO bookings (start_date, end_date, is_active, customer_id, room_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		Day(booking.StartDate),
		Day(booking.EndDate),
		booking.IsActive,
		booking.CustomerID,
		booking.RoomID,
	).Scan(&booking.ID)
}
