package changeSeats

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"webinarPlanner/internal/lib/api/response"
	"webinarPlanner/internal/lib/logger/sl"
	"webinarPlanner/internal/models"
	"webinarPlanner/internal/usecase"
)

// SeatsRequest accepts seats as a JSON number or a numeric string, both show
// up from existing clients.
type SeatsRequest struct {
	Seats json.Number `json:"seats" validate:"required"`
}

type SeatsResponse struct {
	response.Response
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatsChanger
type SeatsChanger interface {
	Execute(ctx context.Context, cmd usecase.ChangeSeatsCommand) error
}

func New(log *slog.Logger, changer SeatsChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.changeSeats.New"

		log = log.With(slog.String("op", op))

		webinarID := chi.URLParam(r, "id")
		if webinarID == "" {
			log.Error("webinar id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("webinar id is required"))
			return
		}

		log = log.With(slog.String("webinar_id", webinarID))

		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		var req SeatsRequest

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
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		seats, err := req.Seats.Int64()
		if err != nil {
			log.Error("invalid seats format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid seats format"))
			return
		}

		err = changer.Execute(r.Context(), usecase.ChangeSeatsCommand{
			User:      models.User{ID: userID},
			WebinarID: webinarID,
			Seats:     int(seats),
		})
		if err != nil {
			log.Error("failed to change seats", sl.Err(err))

			switch {
			case errors.Is(err, models.ErrWebinarNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, models.ErrNotOrganizer):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, models.ErrNotEnoughSeats),
				errors.Is(err, models.ErrTooManySeats),
				errors.Is(err, models.ErrReduceSeats):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to change seats"))
			}

			return
		}

		log.Info("seats updated", slog.Int64("seats", seats))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SeatsResponse{
		Response: response.OK(),
		Message:  "Seats updated",
	})
}
