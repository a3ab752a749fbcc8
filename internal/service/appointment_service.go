package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/events"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// AppointmentService coordinates appointment reads (scoped by role/branch)
// and mutations (followed by a best-effort broadcast).
type AppointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	clients      repository.ClientRepository
	broadcaster  *events.Broadcaster
}

// AppointmentDependencies bundles requirements for the service.
type AppointmentDependencies struct {
	AppointmentRepo repository.AppointmentRepository
	UserRepo        repository.UserRepository
	ClientRepo      repository.ClientRepository
	Broadcaster     *events.Broadcaster
}

// NewAppointmentService constructs the service.
func NewAppointmentService(deps AppointmentDependencies) *AppointmentService {
	return &AppointmentService{
		appointments: deps.AppointmentRepo,
		users:        deps.UserRepo,
		clients:      deps.ClientRepo,
		broadcaster:  deps.Broadcaster,
	}
}

// AppointmentQuery describes the optional pre-filters of a read path.
type AppointmentQuery struct {
	Date      *time.Time
	At        *time.Time
	SlotStart *time.Time
	SlotEnd   *time.Time
	Branch    domain.Branch
}

// AppointmentCreateInput describes the creation payload.
type AppointmentCreateInput struct {
	UserID            int64
	ClientID          int64
	DateOfAppointment time.Time
	Price             *int
	Course            *string
	Discount          *int
	TypeOfPayment     *string
	TypeOfMassage     *string
	Duration          *int
	Service           *string
}

// List returns the appointments visible to the requester. The same scope
// filter runs on every read path regardless of which pre-filter applied.
func (s *AppointmentService) List(ctx context.Context, principalUser *domain.User, identity domain.Identity, query AppointmentQuery) ([]domain.Appointment, error) {
	appts, err := s.appointments.ListWithFilter(ctx, repository.AppointmentFilter{
		Date:      query.Date,
		At:        query.At,
		SlotStart: query.SlotStart,
		SlotEnd:   query.SlotEnd,
	})
	if err != nil {
		return nil, err
	}
	return domain.FilterAppointments(identity, principalUser, query.Branch, appts), nil
}

// Create persists a new appointment and, after the commit, notifies
// observers. Creation is open to any authenticated user, including for
// appointments owned by someone else.
func (s *AppointmentService) Create(ctx context.Context, input AppointmentCreateInput) (*domain.Appointment, error) {
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": input.UserID})
		}
		return nil, err
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"client_id": input.ClientID})
		}
		return nil, err
	}

	clientID := input.ClientID
	appt := &domain.Appointment{
		DateOfCreation:    time.Now(),
		DateOfAppointment: input.DateOfAppointment,
		Price:             input.Price,
		Course:            input.Course,
		Discount:          input.Discount,
		TypeOfPayment:     input.TypeOfPayment,
		TypeOfMassage:     input.TypeOfMassage,
		Duration:          input.Duration,
		Service:           input.Service,
		UserID:            input.UserID,
		ClientID:          &clientID,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(events.NewAppointmentEvent(events.EventAppointmentCreated, appt.DateOfAppointment, appt.ID))
	return appt, nil
}

// Finish flips the one-way completion flag and notifies observers.
func (s *AppointmentService) Finish(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appointments.Finish(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"appointment_id": id})
		}
		return nil, err
	}

	s.broadcaster.Broadcast(events.NewAppointmentEvent(events.EventAppointmentCompleted, appt.DateOfAppointment, appt.ID))
	return appt, nil
}

// Delete removes an appointment and notifies observers. A missing id is
// reported as not-found and triggers no broadcast.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("appointment", map[string]any{"appointment_id": id})
		}
		return err
	}
	if err := s.appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("appointment", map[string]any{"appointment_id": id})
		}
		return err
	}

	s.broadcaster.Broadcast(events.NewAppointmentEvent(events.EventAppointmentDeleted, appt.DateOfAppointment, appt.ID))
	return nil
}
