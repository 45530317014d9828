// Package memberhub собирает HTTP-приложение: хранилище, сервисы, маршруты и сервер.
package memberhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/member-hub/docs" // swagger-документ для /docs
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/entity/create"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/entity/list"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/entity/read"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/entity/remove"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/entity/update"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/health"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/user/followers"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/user/subscribe"
	"github.com/magabrotheeeer/member-hub/internal/http/handlers/user/unsubscribe"
	"github.com/magabrotheeeer/member-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/member-hub/internal/lib/metrics"
	"github.com/magabrotheeeer/member-hub/internal/models"
	"github.com/magabrotheeeer/member-hub/internal/services"
)

// Deps — всё, что нужно маршрутам.
type Deps struct {
	Logger   *slog.Logger
	Service  *services.Service
	Stats    health.StatsProvider
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limiter  *rate.Limiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, d Deps) {
	logger := d.Logger
	users := d.Service.Users()
	profiles := d.Service.Profiles()
	posts := d.Service.Posts()
	memberTypes := d.Service.MemberTypes()

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware(d.Metrics),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, d.Limiter))

		r.Get("/health", health.New(logger, d.Stats).ServeHTTP)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", list.New[models.User](logger, users, "user").ServeHTTP)
			r.Post("/", create.New[models.CreateUser, models.User](logger, users, "user").ServeHTTP)
			r.Get("/{id}", read.New[models.User](logger, users, "user").ServeHTTP)
			r.Patch("/{id}", update.New[models.ChangeUser, models.User](logger, users, "user").ServeHTTP)
			r.Delete("/{id}", remove.New[models.User](logger, users, "user").ServeHTTP)
			r.Post("/{id}/subscribeTo", subscribe.New(logger, users).ServeHTTP)
			r.Post("/{id}/unsubscribeFrom", unsubscribe.New(logger, users).ServeHTTP)
			r.Get("/{id}/followers", followers.New(logger, users).ServeHTTP)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", list.New[models.Profile](logger, profiles, "profile").ServeHTTP)
			r.Post("/", create.New[models.CreateProfile, models.Profile](logger, profiles, "profile").ServeHTTP)
			r.Get("/{id}", read.New[models.Profile](logger, profiles, "profile").ServeHTTP)
			r.Patch("/{id}", update.New[models.ChangeProfile, models.Profile](logger, profiles, "profile").ServeHTTP)
			r.Delete("/{id}", remove.New[models.Profile](logger, profiles, "profile").ServeHTTP)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", list.New[models.Post](logger, posts, "post").ServeHTTP)
			r.Post("/", create.New[models.CreatePost, models.Post](logger, posts, "post").ServeHTTP)
			r.Get("/{id}", read.New[models.Post](logger, posts, "post").ServeHTTP)
			r.Patch("/{id}", update.New[models.ChangePost, models.Post](logger, posts, "post").ServeHTTP)
			r.Delete("/{id}", remove.New[models.Post](logger, posts, "post").ServeHTTP)
		})

		r.Route("/member-types", func(r chi.Router) {
			r.Get("/", list.New[models.MemberType](logger, memberTypes, "member type").ServeHTTP)
			r.Get("/{id}", read.New[models.MemberType](logger, memberTypes, "member type").ServeHTTP)
			r.Patch("/{id}", update.New[models.ChangeMemberType, models.MemberType](logger, memberTypes, "member type").ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
}
