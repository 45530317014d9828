// Package list реализует HTTP-обработчик для получения всех записей одной сущности.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики получения списка записей.
type Service[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Handler обрабатывает запросы на получение списка записей сущности entity.
type Handler[T any] struct {
	log     *slog.Logger
	service Service[T]
	entity  string
}

// New создает новый Handler. entity используется в логах и текстах ошибок.
func New[T any](log *slog.Logger, service Service[T], entity string) *Handler[T] {
	return &Handler[T]{
		log:     log,
		service: service,
		entity:  entity,
	}
}

// ServeHTTP возвращает все записи в порядке создания.
func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list records", sl.Err(err))
		response.WriteError(w, r, err, "could not list "+h.entity+"s")
		return
	}
	if res == nil {
		res = []T{}
	}

	log.Info("success to list records", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(res))
}
