package service

import (
	"context"
	"time"

	"feline-fascination/internal/domain"
	"feline-fascination/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockFactService ---
type MockFactService struct {
	mock.Mock
}

func (m *MockFactService) Current() dto.FactResponse {
	args := m.Called()
	return args.Get(0).(dto.FactResponse)
}

func (m *MockFactService) Tick() {
	m.Called()
}

func (m *MockFactService) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFactService) Stop() {
	m.Called()
}

// --- MockLikeService ---
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Like(ctx context.Context) (*dto.LikeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LikeResponse), args.Error(1)
}

func (m *MockLikeService) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockQuizSessionStore ---
type MockQuizSessionStore struct {
	mock.Mock
}

func (m *MockQuizSessionStore) Put(ctx context.Context, session *domain.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockQuizSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockQuizSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
