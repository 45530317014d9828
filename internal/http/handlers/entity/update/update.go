// Package update реализует HTTP-обработчик частичного обновления записи.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
)

type Handler[Req, T any] struct {
	log      *slog.Logger
	service  Service[Req, T]
	validate *validator.Validate
	entity   string
}

type Service[Req, T any] interface {
	Update(ctx context.Context, id string, req Req) (T, error)
}

func New[Req, T any](log *slog.Logger, service Service[Req, T], entity string) *Handler[Req, T] {
	return &Handler[Req, T]{
		log:      log,
		service:  service,
		validate: validator.New(),
		entity:   entity,
	}
}

func (h *Handler[Req, T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Req
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("id is missing in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	res, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update record", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err, "could not update "+h.entity)
		return
	}

	log.Info("success to update record", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(res))
}
