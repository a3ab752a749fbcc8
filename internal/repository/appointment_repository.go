package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/scheduling-service/internal/domain"
)

// AppointmentFilter captures the value pre-filters a read path may apply
// before role scoping. Role and branch visibility are not part of the query;
// they run over the returned collection.
type AppointmentFilter struct {
	Date         *time.Time // calendar date of the appointment
	At           *time.Time // exact appointment timestamp
	SlotStart    *time.Time // inclusive window start
	SlotEnd      *time.Time // inclusive window end
	FinishedOnly bool
	RangeStart   *time.Time // inclusive calendar date range, used by payroll
	RangeEnd     *time.Time
}

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Finish(ctx context.Context, id int64) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
	ListWithFilter(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (date_of_creation, date_of_appointment, is_finished, price, course,
            discount, type_of_payment, type_of_massage, duration, service, user_id, client_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		appt.DateOfCreation,
		appt.DateOfAppointment,
		appt.IsFinished,
		appt.Price,
		appt.Course,
		appt.Discount,
		appt.TypeOfPayment,
		appt.TypeOfMassage,
		appt.Duration,
		appt.Service,
		appt.UserID,
		appt.ClientID,
	).Scan(&appt.ID)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	const query = `
        SELECT id, date_of_creation, date_of_appointment, is_finished, price, course,
               discount, type_of_payment, type_of_massage, duration, service, user_id, client_id
        FROM appointments WHERE id=$1`
	var appt domain.Appointment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.DateOfCreation,
		&appt.DateOfAppointment,
		&appt.IsFinished,
		&appt.Price,
		&appt.Course,
		&appt.Discount,
		&appt.TypeOfPayment,
		&appt.TypeOfMassage,
		&appt.Duration,
		&appt.Service,
		&appt.UserID,
		&appt.ClientID,
	); err != nil {
		return nil, err
	}
	return &appt, nil
}

// Finish sets the one-way completion flag. The flag is never reset.
func (r *appointmentRepository) Finish(ctx context.Context, id int64) (*domain.Appointment, error) {
	const query = `
        UPDATE appointments SET is_finished=TRUE WHERE id=$1
        RETURNING id, date_of_creation, date_of_appointment, is_finished, price, course,
                  discount, type_of_payment, type_of_massage, duration, service, user_id, client_id`
	var appt domain.Appointment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.DateOfCreation,
		&appt.DateOfAppointment,
		&appt.IsFinished,
		&appt.Price,
		&appt.Course,
		&appt.Discount,
		&appt.TypeOfPayment,
		&appt.TypeOfMassage,
		&appt.Duration,
		&appt.Service,
		&appt.UserID,
		&appt.ClientID,
	); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) ListWithFilter(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error) {
	base := `SELECT a.id, a.date_of_creation, a.date_of_appointment, a.is_finished, a.price, a.course,
                    a.discount, a.type_of_payment, a.type_of_massage, a.duration, a.service,
                    a.user_id, a.client_id,
                    u.email, u.is_superuser, u.is_admin, u.f_name, u.l_name, u.m_name,
                    u.baitursynov, u.gagarina, u.position,
                    c.id, c.f_name, c.l_name, c.m_name, c.phone, c.email, c.visit, c.user_id
             FROM appointments a
             JOIN users u ON u.id = a.user_id
             LEFT JOIN clients c ON c.id = a.client_id`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		clauses = append(clauses, fmt.Sprintf("a.date_of_appointment::date = $%d::date", len(args)))
	}
	if filter.At != nil {
		args = append(args, *filter.At)
		clauses = append(clauses, fmt.Sprintf("a.date_of_appointment = $%d", len(args)))
	}
	if filter.SlotStart != nil {
		args = append(args, *filter.SlotStart)
		clauses = append(clauses, fmt.Sprintf("a.date_of_appointment >= $%d", len(args)))
	}
	if filter.SlotEnd != nil {
		args = append(args, *filter.SlotEnd)
		clauses = append(clauses, fmt.Sprintf("a.date_of_appointment <= $%d", len(args)))
	}
	if filter.FinishedOnly {
		clauses = append(clauses, "a.is_finished = TRUE")
	}
	if filter.RangeStart != nil && filter.RangeEnd != nil {
		args = append(args, *filter.RangeStart)
		start := len(args)
		args = append(args, *filter.RangeEnd)
		clauses = append(clauses, fmt.Sprintf("a.date_of_appointment::date BETWEEN $%d::date AND $%d::date", start, len(args)))
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY a.id", base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for rows.Next() {
		var (
			appt   domain.Appointment
			owner  domain.User
			client domain.Client

			clientID *int64
		)
		if err := rows.Scan(
			&appt.ID,
			&appt.DateOfCreation,
			&appt.DateOfAppointment,
			&appt.IsFinished,
			&appt.Price,
			&appt.Course,
			&appt.Discount,
			&appt.TypeOfPayment,
			&appt.TypeOfMassage,
			&appt.Duration,
			&appt.Service,
			&appt.UserID,
			&appt.ClientID,
			&owner.Email,
			&owner.IsSuperuser,
			&owner.IsAdmin,
			&owner.FirstName,
			&owner.LastName,
			&owner.MiddleName,
			&owner.Baitursynov,
			&owner.Gagarina,
			&owner.Position,
			&clientID,
			&client.FirstName,
			&client.LastName,
			&client.MiddleName,
			&client.Phone,
			&client.Email,
			&client.Visits,
			&client.UserID,
		); err != nil {
			return nil, err
		}
		owner.ID = appt.UserID
		appt.Owner = &owner
		if clientID != nil {
			client.ID = *clientID
			appt.Client = &client
		}
		result = append(result, appt)
	}
	return result, rows.Err()
}
