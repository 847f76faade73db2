package usecase

import (
	"context"

	"webinarPlanner/internal/models"
)

// WebinarRepository is the authoritative store for webinars. SaveWebinar must
// fail when the id is already taken, UpdateWebinar must fail with
// models.ErrWebinarNotFound when it is not.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarRepository
type WebinarRepository interface {
	FindWebinarByID(ctx context.Context, id string) (*models.Webinar, error)
	SaveWebinar(ctx context.Context, webinar *models.Webinar) error
	UpdateWebinar(ctx context.Context, webinar *models.Webinar) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IDGenerator
type IDGenerator interface {
	Generate() string
}
