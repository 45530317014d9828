// Package followers реализует HTTP-обработчик списка подписчиков пользователя.
package followers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

// Service описывает интерфейс получения подписчиков.
type Service interface {
	Followers(ctx context.Context, userID string) ([]models.User, error)
}

// Handler обрабатывает GET /users/{id}/followers.
type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.followers"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	users, err := h.service.Followers(r.Context(), id)
	if err != nil {
		log.Error("failed to list followers", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err, "could not list followers")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	log.Info("success to list followers", slog.String("id", id), slog.Int("count", len(users)))
	render.JSON(w, r, response.StatusOKWithData(users))
}
