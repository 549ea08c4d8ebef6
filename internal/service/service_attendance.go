// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

type attendanceService struct {
	attendanceRepository store.AttendanceRepository
	logger               *logger.Logger
}

// NewAttendanceService returns an AttendanceService recording per-user,
// per-date statuses against the seeded status master table.
func NewAttendanceService(attendanceRepository store.AttendanceRepository, logger *logger.Logger) AttendanceService {
	return &attendanceService{
		attendanceRepository: attendanceRepository,
		logger:               logger,
	}
}

func (a *attendanceService) ListStatuses(ctx context.Context) ([]models.AttendanceStatus, error) {
	statuses, err := a.attendanceRepository.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("attendance status listing ended with error: %w", err)
	}

	return statuses, nil
}

// Mark records one user's status for one date. Marking the same (user, date)
// pair again replaces the earlier entry.
func (a *attendanceService) Mark(ctx context.Context, markedBy int64, mark models.AttendanceMark) (models.Attendance, error) {
	log := logger.FromContext(ctx)

	switch {
	case mark.UserID <= 0:
		return models.Attendance{}, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	case mark.Date.IsZero():
		return models.Attendance{}, fmt.Errorf("%w: attendance date is required", ErrInvalidDataProvided)
	case mark.Status == "":
		return models.Attendance{}, fmt.Errorf("%w: status code is required", ErrInvalidDataProvided)
	}

	status, err := a.attendanceRepository.GetStatusByCode(ctx, mark.Status)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("attendance status lookup ended with error: %w", err)
	}

	day := civilDate(mark.Date)
	entry := models.Attendance{
		UserID:   mark.UserID,
		Date:     day,
		StatusID: status.ID,
		MarkedBy: markedBy,
		Reason:   mark.Reason,
	}

	saved, err := a.attendanceRepository.Mark(ctx, entry)
	if err != nil {
		log.Err(err).Int64("user_id", mark.UserID).Msg("attendance marking failed")
		return models.Attendance{}, fmt.Errorf("attendance marking ended with error: %w", err)
	}
	if saved.StatusCode == "" {
		saved.StatusCode = status.Code
	}

	log.Info().
		Int64("user_id", saved.UserID).
		Str("date", day.Format(time.DateOnly)).
		Str("status", status.Code).
		Msg("attendance marked")

	return saved, nil
}

// BulkMark records a batch of entries in one transaction. The batch is
// atomic: every entry is validated and resolved before the store is touched,
// and one bad entry rejects the whole request.
func (a *attendanceService) BulkMark(ctx context.Context, markedBy int64, marks []models.AttendanceMark) ([]models.Attendance, error) {
	log := logger.FromContext(ctx)

	if len(marks) == 0 {
		return nil, fmt.Errorf("%w: no attendance entries provided", ErrInvalidDataProvided)
	}

	statuses := make(map[string]models.AttendanceStatus, len(marks))
	entries := make([]models.Attendance, 0, len(marks))
	for number, mark := range marks {
		switch {
		case mark.UserID <= 0:
			return nil, fmt.Errorf("entry %d of %d: %w: user id is required", number+1, len(marks), ErrInvalidDataProvided)
		case mark.Date.IsZero():
			return nil, fmt.Errorf("entry %d of %d: %w: attendance date is required", number+1, len(marks), ErrInvalidDataProvided)
		case mark.Status == "":
			return nil, fmt.Errorf("entry %d of %d: %w: status code is required", number+1, len(marks), ErrInvalidDataProvided)
		}

		status, known := statuses[mark.Status]
		if !known {
			resolved, err := a.attendanceRepository.GetStatusByCode(ctx, mark.Status)
			if err != nil {
				return nil, fmt.Errorf("entry %d of %d: attendance status lookup ended with error: %w", number+1, len(marks), err)
			}
			statuses[mark.Status] = resolved
			status = resolved
		}

		entries = append(entries, models.Attendance{
			UserID:   mark.UserID,
			Date:     civilDate(mark.Date),
			StatusID: status.ID,
			MarkedBy: markedBy,
			Reason:   mark.Reason,
		})
	}

	saved, err := a.attendanceRepository.BulkMark(ctx, entries)
	if err != nil {
		log.Err(err).Int("entries", len(entries)).Msg("bulk attendance marking failed")
		return nil, fmt.Errorf("bulk attendance marking ended with error: %w", err)
	}

	for number := range saved {
		if saved[number].StatusCode == "" {
			saved[number].StatusCode = marks[number].Status
		}
	}

	log.Info().Int("entries", len(saved)).Msg("attendance batch marked")

	return saved, nil
}

func (a *attendanceService) ListAttendance(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error) {
	entries, count, err := a.attendanceRepository.ListAttendance(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("attendance listing ended with error: %w", err)
	}

	return entries, count, nil
}

// Summary aggregates one user's entries over the inclusive [from, to] period
// into the counts payroll consumes.
func (a *attendanceService) Summary(ctx context.Context, userID int64, from, to time.Time) (models.AttendanceSummary, error) {
	switch {
	case userID <= 0:
		return models.AttendanceSummary{}, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	case from.IsZero() || to.IsZero():
		return models.AttendanceSummary{}, fmt.Errorf("%w: summary period is required", ErrInvalidDataProvided)
	case from.After(to):
		return models.AttendanceSummary{}, fmt.Errorf("%w: period start is after its end", ErrInvalidDataProvided)
	}

	from, to = civilDate(from), civilDate(to)
	counts, err := a.attendanceRepository.SummaryByCode(ctx, userID, from, to)
	if err != nil {
		return models.AttendanceSummary{}, fmt.Errorf("attendance summary ended with error: %w", err)
	}

	summary := models.AttendanceSummary{
		UserID:      userID,
		From:        from,
		To:          to,
		Present:     counts[models.StatusPresent],
		HalfDays:    counts[models.StatusHalfDay],
		Absent:      counts[models.StatusAbsent],
		PaidLeave:   counts[models.StatusPaidLeave],
		UnpaidLeave: counts[models.StatusUnpaidLeave],
	}
	summary.PayableDays = float64(summary.Present+summary.PaidLeave) + 0.5*float64(summary.HalfDays)

	return summary, nil
}

// civilDate strips the time-of-day so entries compare by calendar date.
func civilDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
