// Package unsubscribe реализует HTTP-обработчик отписки.
//
// Маршрут POST /users/{id}/unsubscribeFrom: пользователь из тела запроса отписывается от {id}.
package unsubscribe

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

type Service interface {
	Unsubscribe(ctx context.Context, followerID, targetID string) (models.User, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.unsubscribe"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	targetID := chi.URLParam(r, "id")
	user, err := h.service.Unsubscribe(r.Context(), req.UserID, targetID)
	if err != nil {
		log.Error("failed to unsubscribe", slog.String("follower_id", req.UserID),
			slog.String("target_id", targetID), sl.Err(err))
		response.WriteError(w, r, err, "could not unsubscribe")
		return
	}

	log.Info("success to unsubscribe", slog.String("follower_id", req.UserID), slog.String("target_id", targetID))
	render.JSON(w, r, response.StatusOKWithData(user))
}
