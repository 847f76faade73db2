package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"webinarPlanner/internal/models"
	"webinarPlanner/internal/usecase/mocks"
)

func existingWebinar(t *testing.T) *models.Webinar {
	t.Helper()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	webinar, err := models.NewWebinar("webinar-id", "alice-id", "Webinar title", 100, start, start.Add(time.Hour))
	require.NoError(t, err)

	return webinar
}

func TestChangeSeats(t *testing.T) {
	t.Parallel()

	alice := models.User{ID: "alice-id", Email: "alice@example.com"}
	bob := models.User{ID: "bob-id", Email: "bob@example.com"}

	testCases := []struct {
		name        string
		cmd         ChangeSeatsCommand
		mockSetup   func(t *testing.T, repo *mocks.WebinarRepository)
		expectedErr error
	}{
		{
			name: "Happy path",
			cmd:  ChangeSeatsCommand{User: alice, WebinarID: "webinar-id", Seats: 200},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
				repo.On("UpdateWebinar", mock.Anything, mock.MatchedBy(func(w *models.Webinar) bool {
					return w.ID == "webinar-id" && w.Seats == 200
				})).Return(nil)
			},
		},
		{
			name: "Same seat count is allowed",
			cmd:  ChangeSeatsCommand{User: alice, WebinarID: "webinar-id", Seats: 100},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
				repo.On("UpdateWebinar", mock.Anything, mock.MatchedBy(func(w *models.Webinar) bool {
					return w.Seats == 100
				})).Return(nil)
			},
		},
		{
			name: "Webinar does not exist",
			cmd:  ChangeSeatsCommand{User: alice, WebinarID: "unknown-webinar-id", Seats: 200},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "unknown-webinar-id").
					Return(nil, models.ErrWebinarNotFound)
			},
			expectedErr: models.ErrWebinarNotFound,
		},
		{
			name: "User is not the organizer",
			cmd:  ChangeSeatsCommand{User: bob, WebinarID: "webinar-id", Seats: 200},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
			},
			expectedErr: models.ErrNotOrganizer,
		},
		{
			name: "Non-organizer is rejected before seat validation",
			cmd:  ChangeSeatsCommand{User: bob, WebinarID: "webinar-id", Seats: 5000},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
			},
			expectedErr: models.ErrNotOrganizer,
		},
		{
			name: "Too many seats",
			cmd:  ChangeSeatsCommand{User: alice, WebinarID: "webinar-id", Seats: 1001},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
			},
			expectedErr: models.ErrTooManySeats,
		},
		{
			name: "Reduce seats",
			cmd:  ChangeSeatsCommand{User: alice, WebinarID: "webinar-id", Seats: 50},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
			},
			expectedErr: models.ErrReduceSeats,
		},
		{
			name: "Update failure",
			cmd:  ChangeSeatsCommand{User: alice, WebinarID: "webinar-id", Seats: 200},
			mockSetup: func(t *testing.T, repo *mocks.WebinarRepository) {
				repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
				repo.On("UpdateWebinar", mock.Anything, mock.AnythingOfType("*models.Webinar")).
					Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewWebinarRepository(t)
			tc.mockSetup(t, repo)

			uc := NewChangeSeats(repo)

			err := uc.Execute(context.Background(), tc.cmd)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tc.expectedErr.Error())
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestChangeSeatsPersistsTarget(t *testing.T) {
	t.Parallel()

	var updated *models.Webinar

	repo := mocks.NewWebinarRepository(t)
	repo.On("FindWebinarByID", mock.Anything, "webinar-id").Return(existingWebinar(t), nil)
	repo.On("UpdateWebinar", mock.Anything, mock.AnythingOfType("*models.Webinar")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*models.Webinar)
		}).
		Return(nil)

	uc := NewChangeSeats(repo)

	err := uc.Execute(context.Background(), ChangeSeatsCommand{
		User:      models.User{ID: "alice-id"},
		WebinarID: "webinar-id",
		Seats:     30,
	})

	// 30 is below the current 100 seats, so nothing may be written.
	require.ErrorIs(t, err, models.ErrReduceSeats)
	assert.Nil(t, updated)

	err = uc.Execute(context.Background(), ChangeSeatsCommand{
		User:      models.User{ID: "alice-id"},
		WebinarID: "webinar-id",
		Seats:     300,
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, 300, updated.Seats)
	assert.Equal(t, "alice-id", updated.OrganizerID)
}
