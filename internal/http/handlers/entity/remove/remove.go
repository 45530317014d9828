// Package remove реализует HTTP-обработчик удаления записи по id.
//
// Для пользователя удаление каскадное: ошибка на одном из шагов каскада возвращается
// как 412 с описанием шага.
package remove

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

// Service описывает интерфейс бизнес-логики удаления записи.
type Service[T any] interface {
	Delete(ctx context.Context, id string) (T, error)
}

// Handler обрабатывает запросы на удаление записи.
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

// ServeHTTP удаляет запись и возвращает её последнее состояние.
func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.remove"
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

	res, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete record", slog.String("id", id), sl.Typed(err))
		response.WriteError(w, r, err, "could not delete "+h.entity)
		return
	}

	log.Info("success to delete record", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(res))
}
