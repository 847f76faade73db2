package organize

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"webinarPlanner/internal/lib/api/response"
	"webinarPlanner/internal/lib/logger/sl"
	"webinarPlanner/internal/models"
	"webinarPlanner/internal/usecase"
)

type WebinarRequest struct {
	Title     string    `json:"title" validate:"required"`
	Seats     int       `json:"seats" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

type WebinarResponse struct {
	response.Response
	ID string `json:"id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarOrganizer
type WebinarOrganizer interface {
	Execute(ctx context.Context, cmd usecase.OrganizeWebinarsCommand) (string, error)
}

func New(log *slog.Logger, organizer WebinarOrganizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.organize.New"

		log = log.With(
			slog.String("op", op),
		)

		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("user id is required"))

			return
		}

		var req WebinarRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		webinarID, err := organizer.Execute(r.Context(), usecase.OrganizeWebinarsCommand{
			UserID:    userID,
			Title:     req.Title,
			Seats:     req.Seats,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			log.Error("failed to organize webinar", sl.Err(err))

			switch {
			case errors.Is(err, models.ErrDatesTooSoon),
				errors.Is(err, models.ErrInvalidDates),
				errors.Is(err, models.ErrNotEnoughSeats),
				errors.Is(err, models.ErrTooManySeats):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to organize webinar"))
			}

			return
		}

		log.Info("webinar organized", slog.String("id", webinarID))

		responseCreated(w, r, webinarID)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, webinarID string) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, WebinarResponse{
		Response: response.OK(),
		ID:       webinarID,
	})
}
