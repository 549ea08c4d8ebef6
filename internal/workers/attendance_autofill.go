package workers

import (
	"context"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// defaultAutofillInterval is used when the configured interval is zero or
// negative.
const defaultAutofillInterval = 1 * time.Hour

// autofilledTypes are the roles the worker sweeps. Owners and customers
// record no attendance.
var autofilledTypes = []models.UserType{
	models.UserTypeManager,
	models.UserTypeLineManager,
	models.UserTypeStaff,
}

// retryClassifier reports whether a database error is transient, so a failed
// sweep can be re-run right away instead of waiting a full interval.
// *store.DB satisfies it through its Postgres error classifier.
type retryClassifier interface {
	Retryable(err error) bool
}

// attendanceAutofillWorker periodically marks every active staff member who
// has no attendance entry for the current date as PRESENT. Explicit marks
// recorded before a sweep are left untouched, and a mark recorded after an
// autofill overwrites it through the regular upsert path, so the worker never
// has the last word over a human.
type attendanceAutofillWorker struct {
	attendance store.AttendanceRepository
	retry      retryClassifier
	interval   time.Duration
	logger     *logger.Logger
}

// NewAttendanceAutofillWorker builds the autofill worker over the attendance
// repository. retry may be nil, in which case every failed sweep waits for
// the next tick.
func NewAttendanceAutofillWorker(attendance store.AttendanceRepository, retry retryClassifier, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultAutofillInterval
	}

	logger.Info().Dur("interval", interval).Msg("attendance autofill worker created")

	return &attendanceAutofillWorker{
		attendance: attendance,
		retry:      retry,
		interval:   interval,
		logger:     logger,
	}
}

// Run sweeps once immediately, then once per interval until ctx is cancelled.
// A failed sweep is logged and waits for the next tick, except transient
// database failures, which re-run once; the worker never takes the server
// down.
func (w *attendanceAutofillWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.runSweep(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("attendance autofill worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// runSweep executes one sweep, re-running it once when the failure is a
// transient database error such as a dropped connection or a serialization
// conflict. Anything else waits for the next tick.
func (w *attendanceAutofillWorker) runSweep(ctx context.Context) {
	err := w.sweep(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}

	if w.retry != nil && w.retry.Retryable(err) {
		w.logger.Warn().Err(err).Str("func", "attendanceAutofillWorker.runSweep").Msg("sweep hit a retryable database error, re-running")
		if err = w.sweep(ctx); err == nil || ctx.Err() != nil {
			return
		}
	}

	w.logger.Err(err).Str("func", "attendanceAutofillWorker.runSweep").Msg("attendance autofill sweep failed")
}

// sweep marks today PRESENT for every active staff account without an entry.
func (w *attendanceAutofillWorker) sweep(ctx context.Context) error {
	ctx = w.logger.WithContext(ctx)

	present, err := w.attendance.GetStatusByCode(ctx, models.StatusPresent)
	if err != nil {
		return err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	userIDs, err := w.attendance.ListUnmarkedUserIDs(ctx, autofilledTypes, today)
	if err != nil {
		return err
	}

	marked := 0
	for _, userID := range userIDs {
		entry := models.Attendance{
			UserID:   userID,
			Date:     today,
			StatusID: present.ID,
		}

		if _, err := w.attendance.Mark(ctx, entry); err != nil {
			// keep sweeping; the missed user is retried next tick
			w.logger.Err(err).Int64("user_id", userID).Str("func", "attendanceAutofillWorker.sweep").Msg("failed to autofill attendance entry")
			continue
		}
		marked++
	}

	if marked > 0 {
		w.logger.Info().Int("marked", marked).Time("date", today).Msg("attendance autofill sweep finished")
	}

	return nil
}
