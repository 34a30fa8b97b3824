package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotelbooking/internal/logger"

	"github.com/redis/go-redis/v9"
)

const defaultMaxTries = 3

// EventHandler processes one booking event taken off the queue.
type EventHandler func(ctx context.Context, event BookingEvent) error

// FailedEvent is what lands on the dead letter list once retries run out.
type FailedEvent struct {
	Event BookingEvent `json:"event"`
	Error string       `json:"error"`
}

// Consumer drains the booking event list, retrying failed events and
// parking them on "<key>:failed" after maxTries attempts.
type Consumer struct {
	redis      *redis.Client
	key        string
	handle     EventHandler
	maxTries   int
	pollWait   time.Duration
	retryDelay time.Duration
}

func NewConsumer(client *redis.Client, key string, handle EventHandler) *Consumer {
	return &Consumer{
		redis:      client,
		key:        key,
		handle:     handle,
		maxTries:   defaultMaxTries,
		pollWait:   2 * time.Second,
		retryDelay: 5 * time.Second,
	}
}

func (c *Consumer) FailedKey() string {
	return c.key + ":failed"
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	logger.Info("Booking event consumer started", "key", c.key)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Booking event consumer stopped")
			return
		default:
			if err := c.processNext(ctx); err != nil && !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				logger.Warn("Booking event poll failed", "error", err)
				c.sleep(ctx, c.pollWait)
			}
		}
	}
}

func (c *Consumer) processNext(ctx context.Context) error {
	result, err := c.redis.BRPop(ctx, c.pollWait, c.key).Result()
	if err != nil {
		return err
	}

	var event BookingEvent
	if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
		logger.Error("Dropping malformed booking event", "error", err)
		return nil
	}

	event.Tries++
	if err := c.handle(ctx, event); err != nil {
		return c.retry(ctx, event, err)
	}

	logger.Debug("Booking event handled", "booking_id", event.BookingID, "tries", event.Tries)
	return nil
}

// retry writes survive cancellation of ctx so a popped event is never lost
// during shutdown; the retry delay is cut short instead.
func (c *Consumer) retry(ctx context.Context, event BookingEvent, cause error) error {
	writeCtx := context.WithoutCancel(ctx)

	if event.Tries < c.maxTries {
		logger.WithError(cause).Warn("Booking event failed, requeueing", "booking_id", event.BookingID, "tries", event.Tries)
		c.sleep(ctx, c.retryDelay)

		data, err := json.Marshal(event)
		if err != nil {
			return err
		}
		return c.redis.LPush(writeCtx, c.key, string(data)).Err()
	}

	logger.Error("Booking event moved to failed queue", "booking_id", event.BookingID, "tries", event.Tries, "error", cause)
	data, err := json.Marshal(FailedEvent{Event: event, Error: cause.Error()})
	if err != nil {
		return err
	}
	return c.redis.LPush(writeCtx, c.FailedKey(), string(data)).Err()
}

func (c *Consumer) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// LogConfirmation is the default handler: it records the confirmation that
// would be sent to the customer.
func LogConfirmation(ctx context.Context, event BookingEvent) error {
	logger.Info("Booking confirmed",
		"booking_id", event.BookingID,
		"customer_id", event.CustomerID,
		"room_id", event.RoomID,
		"start_date", event.StartDate,
		"end_date", event.EndDate,
	)
	return nil
}
