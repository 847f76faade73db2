package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webinarPlanner/internal/models"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return &Storage{DB: db}, mock
}

func testWebinar() *models.Webinar {
	start := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

	return &models.Webinar{
		ID:          "webinar-id",
		OrganizerID: "organizer-id",
		Title:       "My New Webinar",
		Seats:       50,
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
	}
}

func TestSaveWebinar(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		storage, mock := newTestStorage(t)
		webinar := testWebinar()

		mock.ExpectExec("INSERT INTO webinars").
			WithArgs(webinar.ID, webinar.OrganizerID, webinar.Title, webinar.Seats, webinar.StartDate, webinar.EndDate).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := storage.SaveWebinar(context.Background(), webinar)
		require.NoError(t, err)
	})

	t.Run("Duplicate id", func(t *testing.T) {
		t.Parallel()

		storage, mock := newTestStorage(t)
		webinar := testWebinar()

		mock.ExpectExec("INSERT INTO webinars").
			WithArgs(webinar.ID, webinar.OrganizerID, webinar.Title, webinar.Seats, webinar.StartDate, webinar.EndDate).
			WillReturnError(&pq.Error{Code: "23505"})

		err := storage.SaveWebinar(context.Background(), webinar)
		require.ErrorIs(t, err, models.ErrWebinarAlreadyExists)
	})
}

func TestFindWebinarByID(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		storage, mock := newTestStorage(t)
		want := testWebinar()

		rows := sqlmock.NewRows([]string{"id", "organizer_id", "title", "seats", "start_date", "end_date"}).
			AddRow(want.ID, want.OrganizerID, want.Title, want.Seats, want.StartDate, want.EndDate)

		mock.ExpectQuery("SELECT id, organizer_id, title, seats, start_date, end_date").
			WithArgs("webinar-id").
			WillReturnRows(rows)

		got, err := storage.FindWebinarByID(context.Background(), "webinar-id")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Not found", func(t *testing.T) {
		t.Parallel()

		storage, mock := newTestStorage(t)

		mock.ExpectQuery("SELECT id, organizer_id, title, seats, start_date, end_date").
			WithArgs("unknown-id").
			WillReturnError(sql.ErrNoRows)

		got, err := storage.FindWebinarByID(context.Background(), "unknown-id")
		require.ErrorIs(t, err, models.ErrWebinarNotFound)
		assert.Nil(t, got)
	})
}

func TestUpdateWebinar(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		storage, mock := newTestStorage(t)
		webinar := testWebinar()
		webinar.Seats = 200

		mock.ExpectExec("UPDATE webinars").
			WithArgs(webinar.ID, webinar.Title, webinar.Seats, webinar.StartDate, webinar.EndDate).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := storage.UpdateWebinar(context.Background(), webinar)
		require.NoError(t, err)
	})

	t.Run("No such webinar", func(t *testing.T) {
		t.Parallel()

		storage, mock := newTestStorage(t)
		webinar := testWebinar()

		mock.ExpectExec("UPDATE webinars").
			WithArgs(webinar.ID, webinar.Title, webinar.Seats, webinar.StartDate, webinar.EndDate).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := storage.UpdateWebinar(context.Background(), webinar)
		require.ErrorIs(t, err, models.ErrWebinarNotFound)
	})
}
