package getWebinar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"webinarPlanner/internal/lib/api/response"
	"webinarPlanner/internal/lib/logger/sl"
	"webinarPlanner/internal/models"
)

type WebinarInfoResponse struct {
	response.Response
	Webinar *models.Webinar `json:"webinar"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarGetter
type WebinarGetter interface {
	FindWebinarByID(ctx context.Context, id string) (*models.Webinar, error)
}

func New(log *slog.Logger, info WebinarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.getWebinar.New"

		log = log.With(slog.String("op", op))

		webinarID := chi.URLParam(r, "id")
		if webinarID == "" {
			log.Error("webinar id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("webinar id is required"))
			return
		}

		log = log.With(slog.String("webinar_id", webinarID))

		webinar, err := info.FindWebinarByID(r.Context(), webinarID)
		if err != nil {
			log.Error("failed to get webinar", sl.Err(err))

			if errors.Is(err, models.ErrWebinarNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get webinar"))
			return
		}

		log.Info("webinar found")

		responseOK(w, r, webinar)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, webinar *models.Webinar) {
	render.JSON(w, r, WebinarInfoResponse{
		Response: response.OK(),
		Webinar:  webinar,
	})
}
