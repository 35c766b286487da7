package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/metrics"
)

const clickTimeout = 3 * time.Second

// ClickRecorder increments click counters in the background. Recording never
// blocks the caller: when the queue is full the click is dropped. Lost clicks
// are accepted.
type ClickRecorder struct {
	repo   ClickRepository
	queue  chan uuid.UUID
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

// NewClickRecorder starts a recorder with a queue of size pending clicks.
func NewClickRecorder(repo ClickRepository, size int) *ClickRecorder {
	if size <= 0 {
		size = 1
	}
	r := &ClickRecorder{
		repo:  repo,
		queue: make(chan uuid.UUID, size),
		done:  make(chan struct{}),
	}
	go r.run()
	return r
}

// Record queues one click for id and reports whether it was accepted.
func (r *ClickRecorder) Record(id uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		metrics.LinkClicks.WithLabelValues("dropped").Inc()
		return false
	}

	select {
	case r.queue <- id:
		return true
	default:
		metrics.LinkClicks.WithLabelValues("dropped").Inc()
		logger.Warn("click queue full, dropping click", zap.String("link_id", id.String()))
		return false
	}
}

// Close stops accepting clicks and waits for queued ones to be written.
func (r *ClickRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	<-r.done
}

func (r *ClickRecorder) run() {
	defer close(r.done)
	for id := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), clickTimeout)
		err := r.repo.IncrementClicks(ctx, id)
		cancel()
		if err != nil {
			metrics.LinkClicks.WithLabelValues("failed").Inc()
			logger.Warn("failed to record click", zap.String("link_id", id.String()), zap.Error(err))
			continue
		}
		metrics.LinkClicks.WithLabelValues("recorded").Inc()
	}
}
