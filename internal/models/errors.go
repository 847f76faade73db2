package models

import "errors"

var (
	ErrWebinarNotFound      = errors.New("webinar not found")
	ErrWebinarAlreadyExists = errors.New("webinar already exists")
	ErrNotOrganizer         = errors.New("user is not allowed to update this webinar")
	ErrDatesTooSoon         = errors.New("webinar must be scheduled at least 3 days in advance")
	ErrInvalidDates         = errors.New("webinar must start before it ends")
	ErrNotEnoughSeats       = errors.New("webinar must have at least 1 seat")
	ErrTooManySeats         = errors.New("webinar must have at most 1000 seats")
	ErrReduceSeats          = errors.New("you cannot reduce the number of seats")
)
