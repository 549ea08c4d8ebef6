package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// mockAttendanceRepository implements store.AttendanceRepository with
// function fields; only the methods the autofill worker touches are wired.
type mockAttendanceRepository struct {
	getStatusByCodeFn     func(ctx context.Context, code string) (models.AttendanceStatus, error)
	listUnmarkedUserIDsFn func(ctx context.Context, types []models.UserType, date time.Time) ([]int64, error)
	markFn                func(ctx context.Context, entry models.Attendance) (models.Attendance, error)
}

func (m *mockAttendanceRepository) UpsertStatus(_ context.Context, _ models.AttendanceStatus) (int64, error) {
	return 0, nil
}

func (m *mockAttendanceRepository) ListStatuses(_ context.Context) ([]models.AttendanceStatus, error) {
	return nil, nil
}

func (m *mockAttendanceRepository) GetStatusByCode(ctx context.Context, code string) (models.AttendanceStatus, error) {
	if m.getStatusByCodeFn == nil {
		return models.AttendanceStatus{}, nil
	}
	return m.getStatusByCodeFn(ctx, code)
}

func (m *mockAttendanceRepository) CountStatuses(_ context.Context) (int, error) {
	return 0, nil
}

func (m *mockAttendanceRepository) Mark(ctx context.Context, entry models.Attendance) (models.Attendance, error) {
	if m.markFn == nil {
		return entry, nil
	}
	return m.markFn(ctx, entry)
}

func (m *mockAttendanceRepository) BulkMark(_ context.Context, entries []models.Attendance) ([]models.Attendance, error) {
	return entries, nil
}

func (m *mockAttendanceRepository) ListAttendance(_ context.Context, _ models.AttendanceFilter, _ models.PageQuery) ([]models.Attendance, int64, error) {
	return nil, 0, nil
}

func (m *mockAttendanceRepository) SummaryByCode(_ context.Context, _ int64, _, _ time.Time) (map[string]int, error) {
	return nil, nil
}

func (m *mockAttendanceRepository) ListUnmarkedUserIDs(ctx context.Context, types []models.UserType, date time.Time) ([]int64, error) {
	if m.listUnmarkedUserIDsFn == nil {
		return nil, nil
	}
	return m.listUnmarkedUserIDsFn(ctx, types, date)
}

// blockingWorker is a Worker that records its start and blocks until the
// context is cancelled.
type blockingWorker struct {
	started chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) {
	close(w.started)
	<-ctx.Done()
}

func TestWorkers_RunAndWait(t *testing.T) {
	w1 := &blockingWorker{started: make(chan struct{})}
	w2 := &blockingWorker{started: make(chan struct{})}

	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	for i, w := range []*blockingWorker{w1, w2} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker[%d]: never started", i)
		}
	}

	cancel()

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after context cancellation")
	}
}

func TestWorkers_EmptyAggregate(t *testing.T) {
	ws := NewWorkers(config.Workers{}, &store.Storages{}, logger.Nop())

	// Run and Wait must be no-ops when no worker is enabled.
	ws.Run(context.Background())
	ws.Wait()

	if len(ws.workers) != 0 {
		t.Errorf("expected no workers for an all-disabled config, got %d", len(ws.workers))
	}
}

func TestNewWorkers_AutofillEnabled(t *testing.T) {
	storages := &store.Storages{AttendanceRepository: &mockAttendanceRepository{}}

	ws := NewWorkers(config.Workers{
		AttendanceAutofillEnabled:  true,
		AttendanceAutofillInterval: time.Minute,
	}, storages, logger.Nop())

	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}
}

func TestAttendanceAutofill_SweepMarksUnmarkedUsers(t *testing.T) {
	var (
		mu     sync.Mutex
		marked []models.Attendance
	)

	repo := &mockAttendanceRepository{
		getStatusByCodeFn: func(_ context.Context, code string) (models.AttendanceStatus, error) {
			if code != models.StatusPresent {
				t.Errorf("expected PRESENT status lookup, got %q", code)
			}
			return models.AttendanceStatus{ID: 42, Code: code}, nil
		},
		listUnmarkedUserIDsFn: func(_ context.Context, types []models.UserType, _ time.Time) ([]int64, error) {
			if len(types) != 3 {
				t.Errorf("expected 3 swept user types, got %d", len(types))
			}
			return []int64{7, 8}, nil
		},
		markFn: func(_ context.Context, entry models.Attendance) (models.Attendance, error) {
			mu.Lock()
			marked = append(marked, entry)
			mu.Unlock()
			return entry, nil
		},
	}

	w := &attendanceAutofillWorker{attendance: repo, interval: time.Hour, logger: logger.Nop()}

	if err := w.sweep(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if len(marked) != 2 {
		t.Fatalf("expected 2 autofilled entries, got %d", len(marked))
	}
	for _, entry := range marked {
		if entry.StatusID != 42 {
			t.Errorf("entry for user %d: expected status ID 42, got %d", entry.UserID, entry.StatusID)
		}
		if entry.MarkedBy != 0 {
			t.Errorf("autofilled entry must carry no marker, got %d", entry.MarkedBy)
		}
		if !entry.Date.Equal(entry.Date.Truncate(24 * time.Hour)) {
			t.Errorf("entry date %v is not normalized to midnight", entry.Date)
		}
	}
}

func TestAttendanceAutofill_SweepContinuesPastMarkError(t *testing.T) {
	var marked []int64

	repo := &mockAttendanceRepository{
		getStatusByCodeFn: func(_ context.Context, _ string) (models.AttendanceStatus, error) {
			return models.AttendanceStatus{ID: 1}, nil
		},
		listUnmarkedUserIDsFn: func(_ context.Context, _ []models.UserType, _ time.Time) ([]int64, error) {
			return []int64{1, 2, 3}, nil
		},
		markFn: func(_ context.Context, entry models.Attendance) (models.Attendance, error) {
			if entry.UserID == 2 {
				return models.Attendance{}, errors.New("boom")
			}
			marked = append(marked, entry.UserID)
			return entry, nil
		},
	}

	w := &attendanceAutofillWorker{attendance: repo, interval: time.Hour, logger: logger.Nop()}

	if err := w.sweep(context.Background()); err != nil {
		t.Fatalf("sweep must not fail on a single mark error: %v", err)
	}

	if len(marked) != 2 {
		t.Fatalf("expected the sweep to mark the 2 remaining users, got %d", len(marked))
	}
}

func TestAttendanceAutofill_SweepFailsOnStatusLookup(t *testing.T) {
	errLookup := errors.New("no status table")
	repo := &mockAttendanceRepository{
		getStatusByCodeFn: func(_ context.Context, _ string) (models.AttendanceStatus, error) {
			return models.AttendanceStatus{}, errLookup
		},
	}

	w := &attendanceAutofillWorker{attendance: repo, interval: time.Hour, logger: logger.Nop()}

	if err := w.sweep(context.Background()); !errors.Is(err, errLookup) {
		t.Fatalf("expected the lookup error, got %v", err)
	}
}

// stubRetryClassifier stands in for *store.DB's Postgres error classifier.
type stubRetryClassifier struct {
	retryable bool
}

func (c *stubRetryClassifier) Retryable(_ error) bool {
	return c.retryable
}

func TestAttendanceAutofill_RetryableFailureRerunsSweep(t *testing.T) {
	attempts := 0
	repo := &mockAttendanceRepository{
		getStatusByCodeFn: func(_ context.Context, _ string) (models.AttendanceStatus, error) {
			attempts++
			if attempts == 1 {
				return models.AttendanceStatus{}, errors.New("connection reset")
			}
			return models.AttendanceStatus{ID: 2, Code: models.StatusPresent}, nil
		},
	}

	w := &attendanceAutofillWorker{
		attendance: repo,
		retry:      &stubRetryClassifier{retryable: true},
		interval:   time.Hour,
		logger:     logger.Nop(),
	}

	w.runSweep(context.Background())

	if attempts != 2 {
		t.Fatalf("expected the sweep to run again after a transient failure, got %d attempts", attempts)
	}
}

func TestAttendanceAutofill_NonRetryableFailureWaitsForNextTick(t *testing.T) {
	attempts := 0
	repo := &mockAttendanceRepository{
		getStatusByCodeFn: func(_ context.Context, _ string) (models.AttendanceStatus, error) {
			attempts++
			return models.AttendanceStatus{}, errors.New("relation does not exist")
		},
	}

	w := &attendanceAutofillWorker{
		attendance: repo,
		retry:      &stubRetryClassifier{retryable: false},
		interval:   time.Hour,
		logger:     logger.Nop(),
	}

	w.runSweep(context.Background())

	if attempts != 1 {
		t.Fatalf("expected a single attempt for a non-retryable failure, got %d", attempts)
	}
}

func TestAttendanceAutofill_RunStopsOnCancel(t *testing.T) {
	sweeps := make(chan struct{}, 8)
	repo := &mockAttendanceRepository{
		listUnmarkedUserIDsFn: func(_ context.Context, _ []models.UserType, _ time.Time) ([]int64, error) {
			select {
			case sweeps <- struct{}{}:
			default:
			}
			return nil, nil
		},
	}

	w := NewAttendanceAutofillWorker(repo, nil, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// the first sweep runs before the first tick
	select {
	case <-sweeps:
	case <-time.After(time.Second):
		t.Fatal("no sweep ran")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
