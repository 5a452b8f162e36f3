package service

import (
	"context"
	"sync"
	"time"

	"feline-fascination/internal/domain"
	"feline-fascination/internal/dto"
	"feline-fascination/internal/logger"
	"feline-fascination/internal/scheduler"

	"go.uber.org/zap"
)

// FactService exposes the rotating fact and owns the timer that rotates it.
type FactService interface {
	Current() dto.FactResponse
	Tick()
	Start(ctx context.Context) error
	Stop()
}

type factService struct {
	mu      sync.Mutex
	rotator *domain.FactRotator
	task    *scheduler.PeriodicTask
}

// NewFactService creates the rotator and its periodic task. The task does
// not run until Start is called.
func NewFactService(facts []domain.Fact, interval time.Duration) (FactService, error) {
	rotator, err := domain.NewFactRotator(facts)
	if err != nil {
		return nil, err
	}
	s := &factService{rotator: rotator}

	task, err := scheduler.NewPeriodicTask("fact-rotation", interval, func(context.Context) {
		s.Tick()
	})
	if err != nil {
		return nil, err
	}
	s.task = task
	return s, nil
}

func (s *factService) Current() dto.FactResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.FactResponse{
		Text:  string(s.rotator.Current()),
		Index: s.rotator.Index(),
		Total: s.rotator.Len(),
	}
}

func (s *factService) Tick() {
	s.mu.Lock()
	s.rotator.Tick()
	index := s.rotator.Index()
	s.mu.Unlock()

	logger.Get().Debug("Fact rotated", zap.Int("index", index))
}

func (s *factService) Start(ctx context.Context) error {
	return s.task.Start(ctx)
}

// Stop cancels the rotation timer; no tick is applied after it returns.
func (s *factService) Stop() {
	s.task.Stop()
}
