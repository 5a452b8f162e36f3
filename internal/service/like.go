package service

import (
	"context"
	"errors"
	"strconv"

	"feline-fascination/internal/cache"
	"feline-fascination/internal/domain"
	"feline-fascination/internal/dto"
	"feline-fascination/internal/logger"

	"go.uber.org/zap"
)

// LikeService counts likes on the hero image. It shares no state with the
// fact rotation or the quiz.
type LikeService interface {
	Like(ctx context.Context) (*dto.LikeResponse, error)
	Count(ctx context.Context) (int64, error)
}

type likeService struct {
	cache domain.Cache
	toast domain.Toast
}

func NewLikeService(c domain.Cache, toast domain.Toast) LikeService {
	return &likeService{cache: c, toast: toast}
}

func likeCounterKey() string {
	return cache.GenerateCacheKey("likes", "counter", "hero")
}

func (s *likeService) Like(ctx context.Context) (*dto.LikeResponse, error) {
	n, err := s.cache.Incr(ctx, likeCounterKey())
	if err != nil {
		logger.Get().Error("Failed to increment likes", zap.Error(err))
		return nil, domain.NewInternalError("failed to record like", err)
	}
	toast := s.toast
	return &dto.LikeResponse{Likes: n, Toast: &toast}, nil
}

func (s *likeService) Count(ctx context.Context) (int64, error) {
	val, err := s.cache.Get(ctx, likeCounterKey())
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return 0, nil
		}
		return 0, domain.NewInternalError("failed to read likes", err)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, domain.NewInternalError("like counter is not an integer", err)
	}
	return n, nil
}
