package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

// PostService реализует операции над постами.
type PostService struct {
	s *Service
}

// List возвращает все посты.
func (p *PostService) List(ctx context.Context) ([]models.Post, error) {
	const op = "services.PostService.List"
	posts, err := p.s.repos.Posts.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return posts, nil
}

// Get возвращает пост по id.
func (p *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	const op = "services.PostService.Get"
	post, found, err := cachedGet(ctx, p.s, entityPost, p.s.repos.Posts, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.Post{}, apperr.NotFound("the post with id %s not found", id)
	}
	return post, nil
}

// Create создает пост существующего пользователя.
func (p *PostService) Create(ctx context.Context, req models.CreatePost) (models.Post, error) {
	const op = "services.PostService.Create"
	s := p.s
	s.mu.Lock()
	post, err := p.create(ctx, req)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityPost, "create", err)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new post", slog.String("id", post.ID), slog.String("user_id", post.UserID))
	s.publish(ctx, EventPostCreated, post.ID, post)
	return post, nil
}

func (p *PostService) create(ctx context.Context, req models.CreatePost) (models.Post, error) {
	_, found, err := p.s.repos.Users.Get(ctx, req.UserID)
	if err != nil {
		return models.Post{}, err
	}
	if !found {
		return models.Post{}, apperr.NotFound("the user with id %s not found", req.UserID)
	}
	return p.s.repos.Posts.Create(ctx, models.Post{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
}

// Update меняет заголовок и текст поста.
func (p *PostService) Update(ctx context.Context, id string, req models.ChangePost) (models.Post, error) {
	const op = "services.PostService.Update"
	s := p.s
	s.mu.Lock()
	post, err := s.repos.Posts.Change(ctx, id, req.Apply)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityPost, "update", err)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityPost, id})
	s.log.Info("updated post", slog.String("id", id))
	s.publish(ctx, EventPostUpdated, id, post)
	return post, nil
}

// Delete удаляет пост.
func (p *PostService) Delete(ctx context.Context, id string) (models.Post, error) {
	const op = "services.PostService.Delete"
	s := p.s
	s.mu.Lock()
	post, err := s.repos.Posts.Delete(ctx, id)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityPost, "delete", err)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityPost, id})
	s.log.Info("deleted post", slog.String("id", id))
	s.publish(ctx, EventPostDeleted, id, post)
	return post, nil
}
