package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	closer := func() {
		sqlxDB.Close()
	}

	return sqlxDB, mock, closer
}

func TestRoomRepository_GetAll(t *testing.T) {
	db, mock, close := setupMock(t)
	defer close()
	repo := NewRoomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, description FROM rooms ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description"}).
			AddRow(1, "Single").
			AddRow(2, "Double"))

	rooms, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, 1, rooms[0].ID)
	require.Equal(t, "Double", rooms[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetAllEmpty(t *testing.T) {
	db, mock, close := setupMock(t)
	defer close()
	repo := NewRoomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, description FROM rooms ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description"}))

	rooms, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rooms)
	require.Empty(t, rooms)
}

func TestRoomRepository_Add(t *testing.T) {
	db, mock, close := setupMock(t)
	defer close()
	repo := NewRoomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (description) VALUES ($1) RETURNING id")).
		WithArgs("Suite").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	room := &Room{Description: "Suite"}
	err := repo.Add(context.Background(), room)
	require.NoError(t, err)
	require.Equal(t, 3, room.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetAll(t *testing.T) {
	db, mock, close := setupMock(t)
	defer close()
	repo := NewBookingRepository(db)

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, start_date, end_date, is_active, customer_id, room_id FROM bookings ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_date", "end_date", "is_active", "customer_id", "room_id"}).
			AddRow(1, start, end, true, 7, 1).
			AddRow(2, start, end, false, 8, 2))

	bookings, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.True(t, bookings[0].IsActive)
	require.False(t, bookings[1].IsActive)
	require.Equal(t, end, bookings[0].EndDate)
	require.Equal(t, 2, bookings[1].RoomID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetAllError(t *testing.T) {
	db, mock, close := setupMock(t)
	defer close()
	repo := NewBookingRepository(db)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, start_date, end_date, is_active, customer_id, room_id FROM bookings ORDER BY id")).
		WillReturnError(dbErr)

	bookings, err := repo.GetAll(context.Background())
	require.ErrorIs(t, err, dbErr)
	require.Nil(t, bookings)
}

func TestBookingRepository_Add(t *testing.T) {
	db, mock, close := setupMock(t)
	defer close()
	repo := NewBookingRepository(db)

	start := time.Date(2026, 11, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, 11, 4, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (start_date, end_date, is_active, customer_id, room_id) VALUES ($1, $2, $3, $4, $5) RETURNING id")).
		WithArgs(Day(start), Day(end), true, 7, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	b := &Booking{StartDate: start, EndDate: end, IsActive: true, CustomerID: 7, RoomID: 2}
	err := repo.Add(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, 42, b.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
