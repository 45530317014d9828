// Package create реализует HTTP-обработчик для создания записей.
//
// Handler принимает JSON-запрос, валидирует его, вызывает бизнес-логику создания и
// возвращает созданную запись. В случае ошибок формируются соответствующие HTTP-ответы.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики создания записи из запроса Req.
type Service[Req, T any] interface {
	Create(ctx context.Context, req Req) (T, error)
}

// Handler управляет HTTP-запросами на создание новых записей.
type Handler[Req, T any] struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service[Req, T]     // Сервис бизнес-логики
	validate *validator.Validate // Валидатор структуры входящих данных
	entity   string
}

// New создает новый Handler с переданными логгером и сервисом.
func New[Req, T any](log *slog.Logger, service Service[Req, T], entity string) *Handler[Req, T] {
	return &Handler[Req, T]{
		log:      log,
		service:  service,
		validate: validator.New(),
		entity:   entity,
	}
}

// ServeHTTP создает запись и отвечает 201 с её содержимым.
func (h *Handler[Req, T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create record", sl.Err(err))
		response.WriteError(w, r, err, "could not create "+h.entity)
		return
	}

	log.Info("success to create record")
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(res))
}
