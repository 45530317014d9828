package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

// MemberTypeService реализует операции над типами участников. Создавать и удалять типы нельзя.
type MemberTypeService struct {
	s *Service
}

func (m *MemberTypeService) List(ctx context.Context) ([]models.MemberType, error) {
	const op = "services.MemberTypeService.List"
	types, err := m.s.repos.MemberTypes.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return types, nil
}

func (m *MemberTypeService) Get(ctx context.Context, id string) (models.MemberType, error) {
	const op = "services.MemberTypeService.Get"
	mt, found, err := cachedGet(ctx, m.s, entityMemberType, m.s.repos.MemberTypes, id)
	if err != nil {
		return models.MemberType{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.MemberType{}, apperr.NotFound("the member type with id %s not found", id)
	}
	return mt, nil
}

// Update меняет скидку и лимит постов.
func (m *MemberTypeService) Update(ctx context.Context, id string, req models.ChangeMemberType) (models.MemberType, error) {
	const op = "services.MemberTypeService.Update"
	s := m.s
	s.mu.Lock()
	mt, err := s.repos.MemberTypes.Change(ctx, id, req.Apply)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityMemberType, "update", err)
	if err != nil {
		return models.MemberType{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityMemberType, id})
	s.log.Info("updated member type", slog.String("id", id))
	s.publish(ctx, EventMemberTypeUpdated, id, mt)
	return mt, nil
}
