package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/scheduling-service/internal/domain"
)

// SalaryRepository defines persistence access for commission rules.
type SalaryRepository interface {
	Create(ctx context.Context, salary *domain.Salary) error
	// CommissionByUser returns the commission percent per user id. Users
	// without a salary row are simply absent from the map.
	CommissionByUser(ctx context.Context) (map[int64]int, error)
}

type salaryRepository struct {
	pool *pgxpool.Pool
}

// NewSalaryRepository returns a Postgres-backed implementation.
func NewSalaryRepository(pool *pgxpool.Pool) SalaryRepository {
	return &salaryRepository{pool: pool}
}

func (r *salaryRepository) Create(ctx context.Context, salary *domain.Salary) error {
	const query = `
        INSERT INTO salaries (salary, percent, user_id)
        VALUES ($1,$2,$3)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		salary.Salary,
		salary.Percent,
		salary.UserID,
	).Scan(&salary.ID)
}

func (r *salaryRepository) CommissionByUser(ctx context.Context) (map[int64]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_id, percent FROM salaries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	percents := make(map[int64]int)
	for rows.Next() {
		var (
			userID  int64
			percent int
		)
		if err := rows.Scan(&userID, &percent); err != nil {
			return nil, err
		}
		percents[userID] = percent
	}
	return percents, rows.Err()
}
