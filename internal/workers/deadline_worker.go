package workers

import (
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"psychportal_backend/internal/logger"
	"psychportal_backend/internal/services"
)

// DeadlineWorker periodically auto-rejects applications whose resume
// deadline passed without an upload.
type DeadlineWorker struct {
	cronEngine *cron.Cron
	appService services.ApplicationService
	spec       string
	running    atomic.Bool
}

// NewDeadlineWorker creates the worker. The spec uses robfig/cron
// syntax, e.g. "@every 12h".
func NewDeadlineWorker(appService services.ApplicationService, spec string) *DeadlineWorker {
	return &DeadlineWorker{
		cronEngine: cron.New(),
		appService: appService,
		spec:       spec,
	}
}

// Start schedules the sweep and runs it once immediately so a restart
// never leaves overdue applications waiting for the next tick.
func (w *DeadlineWorker) Start() error {
	if _, err := w.cronEngine.AddFunc(w.spec, w.sweep); err != nil {
		return err
	}
	w.cronEngine.Start()
	logger.Info("deadline worker started", "spec", w.spec)

	go w.sweep()
	return nil
}

// Stop waits for a running sweep to finish
func (w *DeadlineWorker) Stop() {
	ctx := w.cronEngine.Stop()
	<-ctx.Done()
	logger.Info("deadline worker stopped")
}

func (w *DeadlineWorker) sweep() {
	// Skip the tick if a previous sweep is still running. The sweep is
	// idempotent, so missing one pass is harmless.
	if !w.running.CompareAndSwap(false, true) {
		logger.Warn("deadline sweep still running, skipping tick")
		return
	}
	defer w.running.Store(false)

	started := time.Now()
	expired, err := w.appService.ExpireOverdue(time.Now().UTC())
	if err != nil {
		logger.WorkerLog("deadline", "sweep", err)
		return
	}

	logger.WorkerLog("deadline", "sweep", nil)
	if expired > 0 {
		logger.Info("deadline sweep expired applications",
			"count", expired,
			"took", time.Since(started).String())
	}
}
