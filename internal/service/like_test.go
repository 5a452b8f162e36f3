package service

import (
	"context"
	"errors"
	"testing"

	"feline-fascination/internal/adapter"
	"feline-fascination/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToast = domain.Toast{Title: "Thanks for the love!", Description: "You've made a cat purr somewhere in the world."}

func TestLikeService_LikeAndCount(t *testing.T) {
	svc := NewLikeService(adapter.NewMemoryCacheAdapter(), testToast)
	ctx := context.Background()

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	resp, err := svc.Like(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Likes)
	require.NotNil(t, resp.Toast)
	assert.Equal(t, testToast, *resp.Toast)

	_, err = svc.Like(ctx)
	require.NoError(t, err)
	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestLikeService_CacheErrors(t *testing.T) {
	ctx := context.Background()
	key := "feline:likes:counter:hero"

	t.Run("incr failure", func(t *testing.T) {
		c := new(MockCache)
		c.On("Incr", ctx, key).Return(int64(0), errors.New("redis down"))
		_, err := NewLikeService(c, testToast).Like(ctx)
		assert.True(t, domain.HasCode(err, domain.CodeInternal))
	})

	t.Run("get failure", func(t *testing.T) {
		c := new(MockCache)
		c.On("Get", ctx, key).Return("", errors.New("redis down"))
		_, err := NewLikeService(c, testToast).Count(ctx)
		assert.True(t, domain.HasCode(err, domain.CodeInternal))
	})

	t.Run("garbage value", func(t *testing.T) {
		c := new(MockCache)
		c.On("Get", ctx, key).Return("lots", nil)
		_, err := NewLikeService(c, testToast).Count(ctx)
		assert.True(t, domain.HasCode(err, domain.CodeInternal))
	})
}
