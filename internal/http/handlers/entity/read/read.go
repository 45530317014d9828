// Package read реализует HTTP-обработчик для получения записи по id.
//
// Handler извлекает id из URL-параметров, вызывает бизнес-логику и возвращает запись
// в JSON-формате. Отсутствующая запись отдаётся как 404.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики чтения записи.
type Service[T any] interface {
	Get(ctx context.Context, id string) (T, error)
}

// Handler обрабатывает запросы на получение записи по уникальному идентификатору.
type Handler[T any] struct {
	log     *slog.Logger
	service Service[T]
	entity  string
}

// New создает новый Handler с переданным логгером и сервисом.
func New[T any](log *slog.Logger, service Service[T], entity string) *Handler[T] {
	return &Handler[T]{
		log:     log,
		service: service,
		entity:  entity,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение записи по id.
func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("id is missing in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	res, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.Error("failed to read record", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err, "could not read "+h.entity)
		return
	}

	log.Info("success to read record", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(res))
}
