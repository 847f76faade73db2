package usecase

import (
	"context"
	"time"

	"webinarPlanner/internal/clock"
	"webinarPlanner/internal/models"
)

const defaultLeadTime = 3 * 24 * time.Hour

// OrganizeWebinars creates a new webinar on behalf of its organizer.
type OrganizeWebinars struct {
	repo     WebinarRepository
	ids      IDGenerator
	clock    clock.Clock
	leadTime time.Duration
}

func NewOrganizeWebinars(repo WebinarRepository, ids IDGenerator, clk clock.Clock, opts ...OrganizeWebinarsOption) *OrganizeWebinars {
	uc := &OrganizeWebinars{
		repo:     repo,
		ids:      ids,
		clock:    clk,
		leadTime: defaultLeadTime,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type OrganizeWebinarsOption func(*OrganizeWebinars)

// WithLeadTime overrides the minimum interval between now and the start date.
func WithLeadTime(d time.Duration) OrganizeWebinarsOption {
	return func(uc *OrganizeWebinars) {
		if d > 0 {
			uc.leadTime = d
		}
	}
}

type OrganizeWebinarsCommand struct {
	UserID    string
	Title     string
	Seats     int
	StartDate time.Time
	EndDate   time.Time
}

// Execute validates the command, mints an id and persists the webinar.
// It returns the new webinar's id.
func (uc *OrganizeWebinars) Execute(ctx context.Context, cmd OrganizeWebinarsCommand) (string, error) {
	now := uc.clock.Now()
	if cmd.StartDate.Before(now.Add(uc.leadTime)) {
		return "", models.ErrDatesTooSoon
	}

	webinar, err := models.NewWebinar(
		uc.ids.Generate(),
		cmd.UserID,
		cmd.Title,
		cmd.Seats,
		cmd.StartDate,
		cmd.EndDate,
	)
	if err != nil {
		return "", err
	}

	if err = uc.repo.SaveWebinar(ctx, webinar); err != nil {
		return "", err
	}

	return webinar.ID, nil
}
