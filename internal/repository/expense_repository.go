package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/scheduling-service/internal/domain"
)

// ExpenseRepository defines persistence access for ledger lines.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	List(ctx context.Context) ([]domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository returns a Postgres-backed implementation.
func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepository{pool: pool}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	const query = `
        INSERT INTO expenses (name, expense)
        VALUES ($1,$2)
        RETURNING id`
	return r.pool.QueryRow(ctx, query, expense.Name, expense.Amount).Scan(&expense.ID)
}

func (r *expenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, expense FROM expenses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.Name, &expense.Amount); err != nil {
			return nil, err
		}
		result = append(result, expense)
	}
	return result, rows.Err()
}

func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
