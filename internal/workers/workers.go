package workers

import (
	"context"
	"sync"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
)

// Workers aggregates every background worker of the application and manages
// their shared lifecycle.
type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

// NewWorkers assembles the workers enabled by configuration. A config with
// every worker disabled yields an empty aggregate, which is valid: Run and
// Wait become no-ops.
func NewWorkers(cfg config.Workers, storages *store.Storages, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating workers...")

	w := new(Workers)

	if cfg.AttendanceAutofillEnabled {
		w.workers = append(w.workers, NewAttendanceAutofillWorker(storages.AttendanceRepository, storages.DB, cfg.AttendanceAutofillInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine. The workers stop when ctx is
// cancelled; call Wait to block until they have all returned.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
