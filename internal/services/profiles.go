package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
	"github.com/magabrotheeeer/member-hub/internal/storage/memory"
)

// ProfileService реализует операции над профилями.
type ProfileService struct {
	s *Service
}

// List возвращает все профили.
func (p *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	const op = "services.ProfileService.List"
	profiles, err := p.s.repos.Profiles.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return profiles, nil
}

// Get возвращает профиль по id.
func (p *ProfileService) Get(ctx context.Context, id string) (models.Profile, error) {
	const op = "services.ProfileService.Get"
	profile, found, err := cachedGet(ctx, p.s, entityProfile, p.s.repos.Profiles, id)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.Profile{}, apperr.NotFound("the profile with id %s not found", id)
	}
	return profile, nil
}

// Create создает профиль. Проверки выполняются по порядку: пользователь существует,
// тип участника существует, у пользователя ещё нет профиля.
func (p *ProfileService) Create(ctx context.Context, req models.CreateProfile) (models.Profile, error) {
	const op = "services.ProfileService.Create"
	s := p.s
	s.mu.Lock()
	profile, err := p.create(ctx, req)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityProfile, "create", err)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new profile", slog.String("id", profile.ID), slog.String("user_id", profile.UserID))
	s.publish(ctx, EventProfileCreated, profile.ID, profile)
	return profile, nil
}

func (p *ProfileService) create(ctx context.Context, req models.CreateProfile) (models.Profile, error) {
	repos := p.s.repos

	_, found, err := repos.Users.Get(ctx, req.UserID)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, apperr.NotFound("the user with id %s not found", req.UserID)
	}

	if err := p.requireMemberType(ctx, req.MemberTypeID); err != nil {
		return models.Profile{}, err
	}

	_, found, err = repos.Profiles.FindOne(ctx, memory.Filter{Key: "userId", Equals: req.UserID})
	if err != nil {
		return models.Profile{}, err
	}
	if found {
		return models.Profile{}, apperr.Conflict("the user with id %s already has a profile", req.UserID)
	}

	return repos.Profiles.Create(ctx, req.Profile())
}

// Update меняет поля профиля. Новый тип участника, если он задан, должен существовать.
func (p *ProfileService) Update(ctx context.Context, id string, req models.ChangeProfile) (models.Profile, error) {
	const op = "services.ProfileService.Update"
	s := p.s
	s.mu.Lock()
	profile, err := p.update(ctx, id, req)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityProfile, "update", err)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityProfile, id})
	s.log.Info("updated profile", slog.String("id", id))
	s.publish(ctx, EventProfileUpdated, id, profile)
	return profile, nil
}

func (p *ProfileService) update(ctx context.Context, id string, req models.ChangeProfile) (models.Profile, error) {
	_, found, err := p.s.repos.Profiles.Get(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, apperr.NotFound("the profile with id %s not found", id)
	}
	if req.MemberTypeID != nil {
		if err := p.requireMemberType(ctx, *req.MemberTypeID); err != nil {
			return models.Profile{}, err
		}
	}
	return p.s.repos.Profiles.Change(ctx, id, req.Apply)
}

// Delete удаляет профиль.
func (p *ProfileService) Delete(ctx context.Context, id string) (models.Profile, error) {
	const op = "services.ProfileService.Delete"
	s := p.s
	s.mu.Lock()
	profile, err := s.repos.Profiles.Delete(ctx, id)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityProfile, "delete", err)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityProfile, id})
	s.log.Info("deleted profile", slog.String("id", id))
	s.publish(ctx, EventProfileDeleted, id, profile)
	return profile, nil
}

func (p *ProfileService) requireMemberType(ctx context.Context, id string) error {
	_, found, err := p.s.repos.MemberTypes.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("the member type with id %s not found", id)
	}
	return nil
}
