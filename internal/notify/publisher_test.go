package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotelbooking/internal/booking"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestPublisher(t *testing.T) (*Publisher, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	p := NewPublisher(db, "booking_events")
	p.now = func() time.Time { return fixedNow }
	return p, mock
}

func testBooking() *booking.Booking {
	return &booking.Booking{
		ID:         12,
		RoomID:     2,
		CustomerID: 7,
		IsActive:   true,
		StartDate:  time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookingCreated(t *testing.T) {
	p, mock := newTestPublisher(t)

	expected, err := json.Marshal(BookingEvent{
		Type:       EventBookingCreated,
		BookingID:  12,
		RoomID:     2,
		CustomerID: 7,
		StartDate:  "2026-11-02",
		EndDate:    "2026-11-05",
		CreatedAt:  fixedNow,
	})
	require.NoError(t, err)

	mock.ExpectLPush("booking_events", string(expected)).SetVal(1)

	err = p.BookingCreated(context.Background(), testBooking())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreated_RedisError(t *testing.T) {
	p, mock := newTestPublisher(t)

	mock.Regexp().ExpectLPush("booking_events", `.*`).SetErr(errors.New("connection refused"))

	err := p.BookingCreated(context.Background(), testBooking())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	p, mock := newTestPublisher(t)

	mock.ExpectLLen("booking_events").SetVal(3)

	n, err := p.QueueLength(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
