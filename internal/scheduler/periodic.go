// Package scheduler runs work on a fixed period with an explicit lifetime.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"feline-fascination/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrAlreadyStarted = errors.New("scheduler: task already started")
	ErrStopped        = errors.New("scheduler: task stopped")
)

// PeriodicTask calls fn every interval on its own goroutine until Stop is
// called or the context passed to Start is cancelled.
type PeriodicTask struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)

	mu       sync.Mutex
	cancel   context.CancelFunc
	stopped  bool
	stopOnce sync.Once
	done     chan struct{}
}

// NewPeriodicTask returns a task that has not been started yet.
func NewPeriodicTask(name string, interval time.Duration, fn func(ctx context.Context)) (*PeriodicTask, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("scheduler: interval must be positive, got %s", interval)
	}
	if fn == nil {
		return nil, errors.New("scheduler: fn is required")
	}
	return &PeriodicTask{
		name:     name,
		interval: interval,
		fn:       fn,
		done:     make(chan struct{}),
	}, nil
}

// Start launches the ticking goroutine. A task can be started only once.
func (p *PeriodicTask) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrStopped
	}
	if p.cancel != nil {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	go p.run(runCtx)

	logger.Get().Debug("Periodic task started",
		zap.String("task", p.name),
		zap.Duration("interval", p.interval),
	)
	return nil
}

func (p *PeriodicTask) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// both cases may be ready at once
			if ctx.Err() != nil {
				return
			}
			p.invoke(ctx)
		}
	}
}

func (p *PeriodicTask) invoke(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("Periodic task panicked",
				zap.String("task", p.name),
				zap.Any("panic", r),
			)
		}
	}()
	p.fn(ctx)
}

// Stop cancels the task and blocks until its goroutine has exited. Once
// Stop returns fn is never called again. Stop is safe to call more than
// once and before Start, but must not be called from fn.
func (p *PeriodicTask) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		cancel := p.cancel
		p.mu.Unlock()

		if cancel == nil {
			close(p.done)
			return
		}
		cancel()
		logger.Get().Debug("Periodic task stopping", zap.String("task", p.name))
	})
	<-p.done
}

// Done is closed once the task will deliver no further ticks.
func (p *PeriodicTask) Done() <-chan struct{} {
	return p.done
}
