// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

const defaultHealthInterval = 30 * time.Second

// reconnectFlusher is notified when the server becomes reachable again.
type reconnectFlusher interface {
	Resync(ctx context.Context) error
}

type clientHealthJob struct {
	adapter adapter.ServerAdapter
	flusher reconnectFlusher
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stateMu sync.RWMutex
	online  bool
	polled  bool
	info    models.AppBuildInfo
}

// NewClientHealthJob creates a clientHealthJob that calls the server's version
// endpoint on a ticker. When a poll succeeds after a failed one, engines are
// resynced through flusher (which may be nil). The job is idle until Start
// is called.
func NewClientHealthJob(serverAdapter adapter.ServerAdapter, flusher reconnectFlusher, logger *logger.Logger) ClientHealthJob {
	return &clientHealthJob{adapter: serverAdapter, flusher: flusher, logger: logger}
}

// Start implements ClientHealthJob. It stops any previously running job, polls
// once right away, then polls every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientHealthJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.poll(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop implements ClientHealthJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientHealthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientHealthJob) Online() bool {
	j.stateMu.RLock()
	defer j.stateMu.RUnlock()
	return j.online
}

func (j *clientHealthJob) ServerInfo() (models.AppBuildInfo, bool) {
	j.stateMu.RLock()
	defer j.stateMu.RUnlock()
	return j.info, j.online
}

func (j *clientHealthJob) poll(ctx context.Context) {
	info, err := j.adapter.Version(ctx)
	if ctx.Err() != nil {
		return
	}

	j.stateMu.Lock()
	wasOnline, polled := j.online, j.polled
	j.online = err == nil
	j.polled = true
	if err == nil {
		j.info = info
	}
	j.stateMu.Unlock()

	if err != nil {
		if wasOnline || !polled {
			j.logger.Warn().Err(err).Str("func", "*clientHealthJob.poll").Msg("server unreachable")
		}
		return
	}

	if polled && !wasOnline && j.flusher != nil {
		j.logger.Info().Str("func", "*clientHealthJob.poll").Msg("server reachable again, resyncing")
		if err := j.flusher.Resync(ctx); err != nil {
			j.logger.Warn().Err(err).Str("func", "*clientHealthJob.poll").Msg("pushing pending changes failed")
		}
	}
}
