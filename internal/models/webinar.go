package models

import "time"

const (
	MinSeats = 1
	MaxSeats = 1000
)

type Webinar struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizerId"`
	Title       string    `json:"title"`
	Seats       int       `json:"seats"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// NewWebinar validates seat bounds and date ordering before returning the webinar.
// The lead-time rule is checked by the organize use-case, not here, so that
// webinars loaded from storage never fail construction once their start date
// has passed.
func NewWebinar(id, organizerID, title string, seats int, startDate, endDate time.Time) (*Webinar, error) {
	if seats < MinSeats {
		return nil, ErrNotEnoughSeats
	}
	if seats > MaxSeats {
		return nil, ErrTooManySeats
	}
	if !startDate.Before(endDate) {
		return nil, ErrInvalidDates
	}

	return &Webinar{
		ID:          id,
		OrganizerID: organizerID,
		Title:       title,
		Seats:       seats,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

// ChangeSeats commits the new seat count in place. Seats may only grow:
// the bound checks run before the reduce check so an out-of-range request
// is reported as a bound violation, not as a reduction.
func (w *Webinar) ChangeSeats(seats int) error {
	if seats < MinSeats {
		return ErrNotEnoughSeats
	}
	if seats > MaxSeats {
		return ErrTooManySeats
	}
	if seats < w.Seats {
		return ErrReduceSeats
	}

	w.Seats = seats

	return nil
}

func (w *Webinar) IsOrganizer(userID string) bool {
	return w.OrganizerID == userID
}
