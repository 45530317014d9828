package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

func TestPostService_Create_UnknownUser(t *testing.T) {
	s, st := newTestService(t)

	_, err := s.Posts().Create(context.Background(), models.CreatePost{
		UserID:  "ghost",
		Title:   "t",
		Content: "c",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "the user with id ghost not found", apperr.Message(err))
	assert.Equal(t, 0, st.Posts.Len())
}

func TestPostService_CRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	u1 := mustCreateUser(t, s, "u1")

	first := mustCreatePost(t, s, u1.ID, "first")
	second := mustCreatePost(t, s, u1.ID, "second")

	posts, err := s.Posts().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Post{first, second}, posts)

	title := "renamed"
	updated, err := s.Posts().Update(ctx, first.ID, models.ChangePost{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, first.Content, updated.Content)

	got, err := s.Posts().Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = s.Posts().Update(ctx, "ghost", models.ChangePost{Title: &title})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "the post with id ghost not found", apperr.Message(err))

	_, err = s.Posts().Delete(ctx, second.ID)
	require.NoError(t, err)

	_, err = s.Posts().Get(ctx, second.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = s.Posts().Create(ctx, models.CreatePost{UserID: u1.ID, Title: "no content"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
