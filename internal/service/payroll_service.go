package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// PayrollRow is one employee's aggregated earnings.
type PayrollRow struct {
	UserID     int64
	FirstName  *string
	LastName   *string
	MiddleName *string
	Amount     float64
}

// PayrollService computes per-employee earnings from finished appointments
// and commission rules.
type PayrollService struct {
	appointments repository.AppointmentRepository
	salaries     repository.SalaryRepository
	users        repository.UserRepository
}

// NewPayrollService constructs the service.
func NewPayrollService(appointments repository.AppointmentRepository, salaries repository.SalaryRepository, users repository.UserRepository) *PayrollService {
	return &PayrollService{appointments: appointments, salaries: salaries, users: users}
}

// Compute aggregates finished appointments per employee: the net amount of
// each appointment (price less discount percentage) times the employee's
// commission percent, summed. Visibility follows the same role/branch rule as
// appointment reads. Amounts are unrounded here; rounding belongs to
// presentation.
//
// The date range applies only when both bounds are supplied; a single bound
// is not a valid combination and means no range filter at all.
func (s *PayrollService) Compute(ctx context.Context, requester *domain.User, identity domain.Identity, startDate, endDate *time.Time) ([]PayrollRow, error) {
	if startDate == nil || endDate == nil {
		startDate, endDate = nil, nil
	}

	appts, err := s.appointments.ListWithFilter(ctx, repository.AppointmentFilter{
		FinishedOnly: true,
		RangeStart:   startDate,
		RangeEnd:     endDate,
	})
	if err != nil {
		return nil, err
	}

	percents, err := s.salaries.CommissionByUser(ctx)
	if err != nil {
		return nil, err
	}

	rows := []PayrollRow{}
	index := make(map[int64]int)
	for _, appt := range appts {
		if appt.Owner == nil {
			continue
		}
		if !identity.CanViewOwner(requester, appt.Owner) {
			continue
		}
		i, ok := index[appt.UserID]
		if !ok {
			i = len(rows)
			index[appt.UserID] = i
			rows = append(rows, PayrollRow{
				UserID:     appt.UserID,
				FirstName:  appt.Owner.FirstName,
				LastName:   appt.Owner.LastName,
				MiddleName: appt.Owner.MiddleName,
			})
		}
		rows[i].Amount += appt.NetAmount() * float64(percents[appt.UserID]) / 100.0
	}
	return rows, nil
}

// SetCommission records a commission rule for a user.
func (s *PayrollService) SetCommission(ctx context.Context, userID int64, flatSalary, percent int) (*domain.Salary, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, err
	}

	salary := &domain.Salary{Salary: flatSalary, Percent: percent, UserID: userID}
	if err := s.salaries.Create(ctx, salary); err != nil {
		return nil, err
	}
	return salary, nil
}
