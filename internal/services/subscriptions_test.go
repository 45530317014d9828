package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
)

func TestUserService_Subscribe(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	u1 := mustCreateUser(t, s, "u1")
	u2 := mustCreateUser(t, s, "u2")

	tests := []struct {
		name       string
		followerID string
		targetID   string
		wantKind   apperr.Kind
		wantMsg    string
		wantList   []string
	}{
		{
			name:       "success",
			followerID: u1.ID,
			targetID:   u2.ID,
			wantList:   []string{u2.ID},
		},
		{
			name:       "already subscribed",
			followerID: u1.ID,
			targetID:   u2.ID,
			wantKind:   apperr.KindBadRequest,
			wantMsg:    "the user with id " + u1.ID + " is already subscribed to the user with id " + u2.ID,
		},
		{
			name:       "self subscription",
			followerID: u1.ID,
			targetID:   u1.ID,
			wantKind:   apperr.KindBadRequest,
			wantMsg:    "the user can't be subscribed to itself",
		},
		{
			name:       "follower not found",
			followerID: "ghost",
			targetID:   u2.ID,
			wantKind:   apperr.KindNotFound,
			wantMsg:    "the user with id ghost not found",
		},
		{
			name:       "target not found",
			followerID: u2.ID,
			targetID:   "ghost",
			wantKind:   apperr.KindNotFound,
			wantMsg:    "the user with id ghost not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.Users().Subscribe(ctx, tt.followerID, tt.targetID)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				assert.Equal(t, tt.wantMsg, apperr.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantList, user.SubscribedToUserIDs)
		})
	}

	// у цели список подписок не меняется
	target, err := s.Users().Get(ctx, u2.ID)
	require.NoError(t, err)
	assert.Empty(t, target.SubscribedToUserIDs)
}

func TestUserService_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	u1 := mustCreateUser(t, s, "u1")
	u2 := mustCreateUser(t, s, "u2")
	u3 := mustCreateUser(t, s, "u3")

	_, err := s.Users().Subscribe(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	_, err = s.Users().Subscribe(ctx, u1.ID, u3.ID)
	require.NoError(t, err)

	user, err := s.Users().Unsubscribe(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{u3.ID}, user.SubscribedToUserIDs)

	_, err = s.Users().Unsubscribe(ctx, u1.ID, u2.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Equal(t,
		"the user with id "+u1.ID+" is already unsubscribed from the user with id "+u2.ID,
		apperr.Message(err))

	_, err = s.Users().Unsubscribe(ctx, u1.ID, "ghost")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = s.Users().Unsubscribe(ctx, "ghost", u1.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := s.Users().Get(ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{u3.ID}, got.SubscribedToUserIDs)
}
