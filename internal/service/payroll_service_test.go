package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/spec-kit/scheduling-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestPayrollCompute(t *testing.T) {
	director := &domain.User{ID: 1, IsSuperuser: true}
	masseur := &domain.User{ID: 4, Baitursynov: true}
	other := &domain.User{ID: 5, Gagarina: true}

	finished := []domain.Appointment{
		{ID: 10, UserID: 4, Owner: masseur, IsFinished: true, Price: intPtr(100), Discount: intPtr(10)},
		{ID: 11, UserID: 4, Owner: masseur, IsFinished: true, Price: intPtr(200)},
		{ID: 12, UserID: 5, Owner: other, IsFinished: true, Price: intPtr(300)},
	}

	t.Run("sums discounted commission per employee", func(t *testing.T) {
		appts := &appointmentRepoStub{listResult: finished}
		salaries := &salaryRepoStub{percents: map[int64]int{4: 50, 5: 30}}
		svc := NewPayrollService(appts, salaries, &userRepoStub{})

		rows, err := svc.Compute(context.Background(), director, domain.ResolveIdentity(director), nil, nil)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		// (100 - 10%) * 50% + 200 * 50% = 45 + 100
		if math.Abs(rows[0].Amount-145.0) > 1e-9 {
			t.Fatalf("rows[0].Amount = %v, want 145", rows[0].Amount)
		}
		if math.Abs(rows[1].Amount-90.0) > 1e-9 {
			t.Fatalf("rows[1].Amount = %v, want 90", rows[1].Amount)
		}
		if !appts.lastFilter.FinishedOnly {
			t.Fatal("expected finished-only filter")
		}
	})

	t.Run("employee without commission rule earns zero", func(t *testing.T) {
		appts := &appointmentRepoStub{listResult: finished}
		salaries := &salaryRepoStub{percents: map[int64]int{4: 50}}
		svc := NewPayrollService(appts, salaries, &userRepoStub{})

		rows, err := svc.Compute(context.Background(), director, domain.ResolveIdentity(director), nil, nil)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[1].Amount != 0 {
			t.Fatalf("rows[1].Amount = %v, want 0", rows[1].Amount)
		}
	})

	t.Run("employee sees only own earnings", func(t *testing.T) {
		appts := &appointmentRepoStub{listResult: finished}
		salaries := &salaryRepoStub{percents: map[int64]int{4: 50, 5: 30}}
		svc := NewPayrollService(appts, salaries, &userRepoStub{})

		rows, err := svc.Compute(context.Background(), masseur, domain.ResolveIdentity(masseur), nil, nil)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(rows) != 1 || rows[0].UserID != 4 {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("single range bound disables the range filter", func(t *testing.T) {
		appts := &appointmentRepoStub{listResult: finished}
		salaries := &salaryRepoStub{percents: map[int64]int{}}
		svc := NewPayrollService(appts, salaries, &userRepoStub{})

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if _, err := svc.Compute(context.Background(), director, domain.ResolveIdentity(director), &start, nil); err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if appts.lastFilter.RangeStart != nil || appts.lastFilter.RangeEnd != nil {
			t.Fatal("expected no range filter when only one bound is given")
		}
	})

	t.Run("both bounds forwarded to the repository", func(t *testing.T) {
		appts := &appointmentRepoStub{listResult: finished}
		salaries := &salaryRepoStub{percents: map[int64]int{}}
		svc := NewPayrollService(appts, salaries, &userRepoStub{})

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		if _, err := svc.Compute(context.Background(), director, domain.ResolveIdentity(director), &start, &end); err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if appts.lastFilter.RangeStart == nil || appts.lastFilter.RangeEnd == nil {
			t.Fatal("expected both range bounds to be forwarded")
		}
	})

	t.Run("appointments without owner are skipped", func(t *testing.T) {
		orphaned := []domain.Appointment{
			{ID: 20, UserID: 9, IsFinished: true, Price: intPtr(500)},
		}
		appts := &appointmentRepoStub{listResult: orphaned}
		salaries := &salaryRepoStub{percents: map[int64]int{9: 50}}
		svc := NewPayrollService(appts, salaries, &userRepoStub{})

		rows, err := svc.Compute(context.Background(), director, domain.ResolveIdentity(director), nil, nil)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("got %d rows, want 0", len(rows))
		}
	})
}

func TestSetCommission(t *testing.T) {
	masseur := &domain.User{ID: 4}
	users := &userRepoStub{byID: map[int64]*domain.User{4: masseur}}

	t.Run("records rule for existing user", func(t *testing.T) {
		salaries := &salaryRepoStub{}
		svc := NewPayrollService(&appointmentRepoStub{}, salaries, users)

		salary, err := svc.SetCommission(context.Background(), 4, 80000, 40)
		if err != nil {
			t.Fatalf("SetCommission() error = %v", err)
		}
		if salary.UserID != 4 || salary.Percent != 40 || salary.Salary != 80000 {
			t.Fatalf("unexpected salary: %+v", salary)
		}
		if len(salaries.created) != 1 {
			t.Fatalf("created %d rules, want 1", len(salaries.created))
		}
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		svc := NewPayrollService(&appointmentRepoStub{}, &salaryRepoStub{}, users)

		if _, err := svc.SetCommission(context.Background(), 99, 0, 40); err == nil {
			t.Fatal("expected error for unknown user")
		}
	})
}
