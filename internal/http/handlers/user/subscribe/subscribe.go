// Package subscribe реализует HTTP-обработчик подписки одного пользователя на другого.
//
// Маршрут POST /users/{id}/subscribeTo: пользователь из тела запроса ({"userId": ...})
// подписывается на пользователя {id}.
package subscribe

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

// Service описывает интерфейс бизнес-логики подписки.
type Service interface {
	Subscribe(ctx context.Context, followerID, targetID string) (models.User, error)
}

// Handler обрабатывает запросы на подписку.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Подписаться на пользователя
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "ID пользователя, на которого подписываются"
// @Param request body models.SubscribeRequest true "ID подписчика"
// @Success 200 {object} response.Response "Обновлённый подписчик"
// @Failure 400 {object} response.ErrorResponse "Подписка на себя или повторная подписка"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /users/{id}/subscribeTo [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.subscribe"
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
	user, err := h.service.Subscribe(r.Context(), req.UserID, targetID)
	if err != nil {
		log.Error("failed to subscribe", slog.String("follower_id", req.UserID),
			slog.String("target_id", targetID), sl.Err(err))
		response.WriteError(w, r, err, "could not subscribe")
		return
	}

	log.Info("success to subscribe", slog.String("follower_id", req.UserID), slog.String("target_id", targetID))
	render.JSON(w, r, response.StatusOKWithData(user))
}
