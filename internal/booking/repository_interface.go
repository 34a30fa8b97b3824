package booking

import "context"

type RoomRepository interface {
	GetAll(ctx context.Context) ([]Room, error)
	Add(ctx context.Context, room *Room) error
}

type BookingRepository interface {
	GetAll(ctx context.Context) ([]Booking, error)
	Add(ctx context.Context, booking *Booking) error
}
