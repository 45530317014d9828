package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

// Subscribe подписывает followerID на targetID и возвращает обновлённого подписчика.
// Связь хранится только в списке подписчика; запись targetID не меняется.
func (u *UserService) Subscribe(ctx context.Context, followerID, targetID string) (models.User, error) {
	const op = "services.UserService.Subscribe"
	s := u.s

	if followerID == targetID {
		err := apperr.BadRequest("the user can't be subscribed to itself")
		s.metrics.ObserveMutation(entityUser, "subscribe", err)
		return models.User{}, err
	}

	s.mu.Lock()
	updated, err := u.subscribe(ctx, followerID, targetID)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityUser, "subscribe", err)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityUser, followerID})
	s.log.Info("user subscribed", slog.String("follower_id", followerID), slog.String("target_id", targetID))
	s.publish(ctx, EventUserSubscribed, followerID, SubscriptionData{FollowerID: followerID, TargetID: targetID})
	return updated, nil
}

func (u *UserService) subscribe(ctx context.Context, followerID, targetID string) (models.User, error) {
	follower, err := u.requireUser(ctx, followerID)
	if err != nil {
		return models.User{}, err
	}
	if _, err := u.requireUser(ctx, targetID); err != nil {
		return models.User{}, err
	}
	if follower.IsSubscribedTo(targetID) {
		return models.User{}, apperr.BadRequest("the user with id %s is already subscribed to the user with id %s", followerID, targetID)
	}

	updated, err := u.s.repos.Users.Change(ctx, followerID, func(rec *models.User) {
		rec.SubscribedToUserIDs = append(rec.SubscribedToUserIDs, targetID)
	})
	if err != nil {
		return models.User{}, apperr.Precondition(StepUser, err, "subscribe error")
	}
	return updated, nil
}

// Unsubscribe отписывает followerID от targetID и возвращает обновлённого подписчика.
func (u *UserService) Unsubscribe(ctx context.Context, followerID, targetID string) (models.User, error) {
	const op = "services.UserService.Unsubscribe"
	s := u.s

	s.mu.Lock()
	updated, err := u.unsubscribe(ctx, followerID, targetID)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityUser, "unsubscribe", err)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityUser, followerID})
	s.log.Info("user unsubscribed", slog.String("follower_id", followerID), slog.String("target_id", targetID))
	s.publish(ctx, EventUserUnsubscribed, followerID, SubscriptionData{FollowerID: followerID, TargetID: targetID})
	return updated, nil
}

func (u *UserService) unsubscribe(ctx context.Context, followerID, targetID string) (models.User, error) {
	follower, err := u.requireUser(ctx, followerID)
	if err != nil {
		return models.User{}, err
	}
	if _, err := u.requireUser(ctx, targetID); err != nil {
		return models.User{}, err
	}
	if !follower.IsSubscribedTo(targetID) {
		return models.User{}, apperr.BadRequest("the user with id %s is already unsubscribed from the user with id %s", followerID, targetID)
	}

	updated, err := u.s.repos.Users.Change(ctx, followerID, func(rec *models.User) {
		rec.SubscribedToUserIDs = slices.DeleteFunc(rec.SubscribedToUserIDs, func(id string) bool {
			return id == targetID
		})
	})
	if err != nil {
		return models.User{}, apperr.Precondition(StepUser, err, "unsubscribe error")
	}
	return updated, nil
}

// requireUser читает пользователя напрямую из коллекции. Вызывается под s.mu.
func (u *UserService) requireUser(ctx context.Context, id string) (models.User, error) {
	user, found, err := u.s.repos.Users.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, apperr.NotFound("the user with id %s not found", id)
	}
	return user, nil
}
