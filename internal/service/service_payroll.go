package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

type payrollService struct {
	payrollRepository store.PayrollRepository
	attendance        AttendanceService
	logger            *logger.Logger
}

// NewPayrollService returns a PayrollService computing disbursements from the
// attendance summaries the given AttendanceService produces.
func NewPayrollService(payrollRepository store.PayrollRepository, attendance AttendanceService, logger *logger.Logger) PayrollService {
	return &payrollService{
		payrollRepository: payrollRepository,
		attendance:        attendance,
		logger:            logger,
	}
}

// SetSalaryStructure activates a new compensation definition for a user,
// replacing any structure currently in force.
func (p *payrollService) SetSalaryStructure(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error) {
	log := logger.FromContext(ctx)

	switch {
	case structure.UserID <= 0:
		return models.SalaryStructure{}, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	case !models.ValidSalaryType(structure.SalaryType):
		return models.SalaryStructure{}, fmt.Errorf("%w: %q", ErrUnknownSalaryType, structure.SalaryType)
	case structure.BaseAmount.IsNegative():
		return models.SalaryStructure{}, fmt.Errorf("%w: base amount must not be negative", ErrInvalidDataProvided)
	case structure.AdvanceAmount.IsNegative():
		return models.SalaryStructure{}, fmt.Errorf("%w: advance amount must not be negative", ErrInvalidDataProvided)
	}

	if structure.EffectiveFrom.IsZero() {
		structure.EffectiveFrom = time.Now()
	}
	structure.IsActive = true

	saved, err := p.payrollRepository.SetSalaryStructure(ctx, structure)
	if err != nil {
		log.Err(err).Int64("user_id", structure.UserID).Msg("salary structure update failed")
		return models.SalaryStructure{}, fmt.Errorf("salary structure update ended with error: %w", err)
	}

	log.Info().
		Int64("user_id", saved.UserID).
		Str("salary_type", saved.SalaryType).
		Msg("salary structure set")

	return saved, nil
}

func (p *payrollService) GetSalaryStructure(ctx context.Context, userID int64) (models.SalaryStructure, error) {
	structure, err := p.payrollRepository.GetActiveSalaryStructure(ctx, userID)
	if err != nil {
		return models.SalaryStructure{}, fmt.Errorf("salary structure lookup ended with error: %w", err)
	}

	return structure, nil
}

func (p *payrollService) ListSalaryStructures(ctx context.Context, userID int64) ([]models.SalaryStructure, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	}

	structures, err := p.payrollRepository.ListSalaryStructures(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("salary structure listing ended with error: %w", err)
	}

	return structures, nil
}

// CreatePayment computes the disbursement for one salary month: the month's
// attendance summary priced at the active structure's daily rate. The payment
// starts in PENDING.
func (p *payrollService) CreatePayment(ctx context.Context, ownerID, userID int64, salaryMonth time.Time) (models.PayrollPayment, error) {
	log := logger.FromContext(ctx)

	switch {
	case ownerID <= 0 || userID <= 0:
		return models.PayrollPayment{}, fmt.Errorf("%w: owner id and user id are required", ErrInvalidDataProvided)
	case salaryMonth.IsZero():
		return models.PayrollPayment{}, fmt.Errorf("%w: salary month is required", ErrInvalidDataProvided)
	}

	year, month, _ := salaryMonth.UTC().Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	structure, err := p.payrollRepository.GetActiveSalaryStructure(ctx, userID)
	if err != nil {
		return models.PayrollPayment{}, fmt.Errorf("salary structure lookup ended with error: %w", err)
	}

	summary, err := p.attendance.Summary(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return models.PayrollPayment{}, fmt.Errorf("attendance summary for payment ended with error: %w", err)
	}

	amount := structure.DailyRate().
		Mul(decimal.NewFromFloat(summary.PayableDays)).
		Round(2)

	payment := models.PayrollPayment{
		OwnerID:     ownerID,
		UserID:      userID,
		SalaryMonth: monthStart,
		PayableDays: summary.PayableDays,
		Amount:      amount,
		Status:      models.PaymentPending,
	}

	created, err := p.payrollRepository.CreatePayment(ctx, payment)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("payroll payment creation failed")
		return models.PayrollPayment{}, fmt.Errorf("payroll payment creation ended with error: %w", err)
	}

	log.Info().
		Int64("payment_id", created.ID).
		Int64("user_id", created.UserID).
		Str("salary_month", monthStart.Format("2006-01")).
		Str("amount", created.Amount.String()).
		Msg("payroll payment created")

	return created, nil
}

func (p *payrollService) GetPayment(ctx context.Context, paymentID int64) (models.PayrollPayment, error) {
	payment, err := p.payrollRepository.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return models.PayrollPayment{}, fmt.Errorf("payroll payment lookup ended with error: %w", err)
	}

	return payment, nil
}

// UpdatePaymentStatus moves a payment through its lifecycle. Only PENDING
// payments can move; reaching SUCCESS stamps PaidAt.
func (p *payrollService) UpdatePaymentStatus(ctx context.Context, paymentID int64, status string) (models.PayrollPayment, error) {
	log := logger.FromContext(ctx)

	if paymentID <= 0 {
		return models.PayrollPayment{}, fmt.Errorf("%w: payment id is required", ErrInvalidDataProvided)
	}
	if !models.ValidPaymentStatus(status) {
		return models.PayrollPayment{}, fmt.Errorf("%w: %q", ErrUnknownPaymentStatus, status)
	}

	current, err := p.payrollRepository.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return models.PayrollPayment{}, fmt.Errorf("payroll payment lookup ended with error: %w", err)
	}

	if status == current.Status {
		return current, nil
	}
	if current.Status != models.PaymentPending {
		return models.PayrollPayment{}, fmt.Errorf("%w: cannot move from %s to %s",
			ErrInvalidStatusTransition, current.Status, status)
	}

	var paidAt *time.Time
	if status == models.PaymentSuccess {
		now := time.Now()
		paidAt = &now
	}

	updated, err := p.payrollRepository.UpdatePaymentStatus(ctx, paymentID, status, paidAt)
	if err != nil {
		log.Err(err).Int64("payment_id", paymentID).Msg("payment status update failed")
		return models.PayrollPayment{}, fmt.Errorf("payment status update ended with error: %w", err)
	}

	log.Info().
		Int64("payment_id", updated.ID).
		Str("status", updated.Status).
		Msg("payment status updated")

	return updated, nil
}

func (p *payrollService) ListPayments(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error) {
	payments, count, err := p.payrollRepository.ListPayments(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("payroll payment listing ended with error: %w", err)
	}

	return payments, count, nil
}
