package notify

import (
	"context"
	"encoding/json"
	"time"

	"hotelbooking/internal/booking"
	"hotelbooking/internal/logger"
	"hotelbooking/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const EventBookingCreated = "booking.created"

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int       `json:"booking_id"`
	RoomID     int       `json:"room_id"`
	CustomerID int       `json:"customer_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
	Tries      int       `json:"tries,omitempty"`
}

// Publisher pushes booking events onto a Redis list for downstream consumers
// (confirmation mails, housekeeping).
type Publisher struct {
	redis *redis.Client
	key   string
	now   func() time.Time
}

func NewPublisher(client *redis.Client, key string) *Publisher {
	return &Publisher{
		redis: client,
		key:   key,
		now:   time.Now,
	}
}

func (p *Publisher) BookingCreated(ctx context.Context, b *booking.Booking) error {
	event := BookingEvent{
		Type:       EventBookingCreated,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate.Format(booking.DateLayout),
		EndDate:    b.EndDate.Format(booking.DateLayout),
		CreatedAt:  p.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.redis.LPush(ctx, p.key, string(data)).Err(); err != nil {
		metrics.RecordBookingEvent("failed")
		return err
	}

	metrics.RecordBookingEvent("success")
	logger.Debug("Booking event queued", "booking_id", b.ID, "key", p.key)
	return nil
}

func (p *Publisher) QueueLength(ctx context.Context) (int64, error) {
	return p.redis.LLen(ctx, p.key).Result()
}

func (p *Publisher) Close() error {
	return p.redis.Close()
}
