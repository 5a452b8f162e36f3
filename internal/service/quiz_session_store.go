package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feline-fascination/internal/cache"
	"feline-fascination/internal/domain"
	"feline-fascination/internal/logger"

	"go.uber.org/zap"
)

// QuizSessionStore keeps quiz sessions between requests.
type QuizSessionStore interface {
	Put(ctx context.Context, session *domain.QuizSession) error
	Get(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// cacheQuizSessionStore stores sessions as JSON in a domain.Cache with a
// sliding TTL refreshed on every Put.
type cacheQuizSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizSessionStore creates a session store backed by the given cache.
func NewQuizSessionStore(c domain.Cache, ttl time.Duration) QuizSessionStore {
	return &cacheQuizSessionStore{
		cache: c,
		ttl:   ttl,
	}
}

func (s *cacheQuizSessionStore) generateKey(sessionID string) string {
	return cache.GenerateCacheKey("quiz", "session", sessionID)
}

func (s *cacheQuizSessionStore) Put(ctx context.Context, session *domain.QuizSession) error {
	if session == nil {
		return domain.NewInvalidInputError("cannot store nil quiz session")
	}

	key := s.generateKey(session.ID)
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal quiz session", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store quiz session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store quiz session %s", session.ID), err)
	}
	logger.Get().Debug("Stored quiz session", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *cacheQuizSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	key := s.generateKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to load quiz session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load quiz session %s", sessionID), err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Failed to unmarshal quiz session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode quiz session %s", sessionID), err)
	}
	return &session, nil
}

func (s *cacheQuizSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, s.generateKey(sessionID)); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete quiz session %s", sessionID), err)
	}
	return nil
}
