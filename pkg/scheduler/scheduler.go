// Package scheduler runs periodic maintenance of the render cache
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
)

// Purger removes expired cache entries
type Purger interface {
	Purge(ctx context.Context) (int, error)
}

// Config holds scheduler configuration
type Config struct {
	PurgeSchedule string         // cron spec or descriptor like "@every 1h"
	Location      *time.Location // schedule timezone, UTC if nil
}

// Scheduler purges the render cache on a cron schedule
type Scheduler struct {
	purger   Purger
	schedule string
	cron     *cron.Cron

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler, failing on an invalid schedule
func New(purger Purger, cfg Config) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	s := &Scheduler{
		purger:   purger,
		schedule: cfg.PurgeSchedule,
		cron:     cron.New(cron.WithLocation(cfg.Location)),
	}
	if _, err := s.cron.AddFunc(cfg.PurgeSchedule, s.purgeJob); err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", cfg.PurgeSchedule, err)
	}
	return s, nil
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()
	s.cron.Start()
	lgr.Printf("[INFO] scheduler started, cache purge schedule %q", s.schedule)
}

// Stop gracefully stops the scheduler and waits for a running purge
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// PurgeNow removes expired cache entries immediately
func (s *Scheduler) PurgeNow(ctx context.Context) (int, error) {
	n, err := s.purger.Purge(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	return n, nil
}

func (s *Scheduler) purgeJob() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	n, err := s.PurgeNow(ctx)
	if err != nil {
		lgr.Printf("[WARN] %v", err)
		return
	}
	if n > 0 {
		lgr.Printf("[DEBUG] purged %d expired cache entries", n)
	}
}
