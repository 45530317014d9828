// Package health реализует проверку работоспособности сервиса.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/member-hub/internal/http/response"
	"github.com/magabrotheeeer/member-hub/internal/storage"
)

// StatsProvider отдаёт размеры коллекций хранилища.
type StatsProvider interface {
	Stats() storage.Stats
}

type Handler struct {
	log   *slog.Logger
	stats StatsProvider
}

func New(log *slog.Logger, stats StatsProvider) *Handler {
	return &Handler{
		log:   log,
		stats: stats,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status":  "ok",
		"storage": h.stats.Stats(),
	}))
}
