package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

func TestMemberTypeService(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	types, err := s.MemberTypes().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMemberTypes(), types)

	discount := 7.5
	updated, err := s.MemberTypes().Update(ctx, models.MemberTypeBusiness, models.ChangeMemberType{Discount: &discount})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.Discount)
	assert.Equal(t, 100, updated.MonthPostsLimit)

	got, err := s.MemberTypes().Get(ctx, models.MemberTypeBusiness)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = s.MemberTypes().Get(ctx, "platinum")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "the member type with id platinum not found", apperr.Message(err))

	negative := -1
	_, err = s.MemberTypes().Update(ctx, models.MemberTypeBasic, models.ChangeMemberType{MonthPostsLimit: &negative})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
