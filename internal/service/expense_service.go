package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// ExpenseService manages the expense ledger.
type ExpenseService struct {
	expenses repository.ExpenseRepository
}

// NewExpenseService constructs the service.
func NewExpenseService(expenses repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// Create adds a ledger line.
func (s *ExpenseService) Create(ctx context.Context, name *string, amount int) (*domain.Expense, error) {
	expense := &domain.Expense{Name: name, Amount: amount}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List returns all ledger lines; expenses are not role-scoped.
func (s *ExpenseService) List(ctx context.Context) ([]domain.Expense, error) {
	return s.expenses.List(ctx)
}

// Delete removes a ledger line.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("expense", map[string]any{"expense_id": id})
		}
		return err
	}
	return nil
}
