package usecase

import (
	"context"

	"webinarPlanner/internal/models"
)

// ChangeSeats applies a seat-count change to an existing webinar on behalf
// of its organizer.
type ChangeSeats struct {
	repo WebinarRepository
}

func NewChangeSeats(repo WebinarRepository) *ChangeSeats {
	return &ChangeSeats{repo: repo}
}

type ChangeSeatsCommand struct {
	User      models.User
	WebinarID string
	Seats     int
}

// Execute looks the webinar up, checks the acting user is its organizer and
// commits the new seat count. The read and the write are two repository
// calls: concurrent changes to the same webinar can lose an update, which is
// accepted at this layer.
func (uc *ChangeSeats) Execute(ctx context.Context, cmd ChangeSeatsCommand) error {
	webinar, err := uc.repo.FindWebinarByID(ctx, cmd.WebinarID)
	if err != nil {
		return err
	}

	if !webinar.IsOrganizer(cmd.User.ID) {
		return models.ErrNotOrganizer
	}

	if err = webinar.ChangeSeats(cmd.Seats); err != nil {
		return err
	}

	return uc.repo.UpdateWebinar(ctx, webinar)
}
