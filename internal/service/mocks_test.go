package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/events"
	"github.com/spec-kit/scheduling-service/internal/repository"
)

type appointmentRepoStub struct {
	listResult []domain.Appointment
	listErr    error
	lastFilter repository.AppointmentFilter

	byID    map[int64]*domain.Appointment
	deleted []int64
	created []*domain.Appointment
}

func (s *appointmentRepoStub) Create(_ context.Context, appt *domain.Appointment) error {
	appt.ID = int64(len(s.created)) + 100
	s.created = append(s.created, appt)
	return nil
}

func (s *appointmentRepoStub) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if appt, ok := s.byID[id]; ok {
		return appt, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *appointmentRepoStub) Finish(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	appt.IsFinished = true
	return appt, nil
}

func (s *appointmentRepoStub) Delete(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *appointmentRepoStub) ListWithFilter(_ context.Context, filter repository.AppointmentFilter) ([]domain.Appointment, error) {
	s.lastFilter = filter
	return s.listResult, s.listErr
}

type userRepoStub struct {
	byID    map[int64]*domain.User
	byEmail map[string]*domain.User
}

func (s *userRepoStub) Create(_ context.Context, user *domain.User) error {
	user.ID = int64(len(s.byID)) + 1
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *userRepoStub) List(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *userRepoStub) ListSpecialists(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

type clientRepoStub struct {
	byID map[int64]*domain.Client
}

func (s *clientRepoStub) Create(_ context.Context, client *domain.Client) error {
	client.ID = int64(len(s.byID)) + 1
	return nil
}

func (s *clientRepoStub) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if client, ok := s.byID[id]; ok {
		return client, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *clientRepoStub) List(_ context.Context) ([]domain.Client, error) {
	return nil, nil
}

func (s *clientRepoStub) Delete(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.byID, id)
	return nil
}

type salaryRepoStub struct {
	percents map[int64]int
	created  []*domain.Salary
}

func (s *salaryRepoStub) Create(_ context.Context, salary *domain.Salary) error {
	salary.ID = int64(len(s.created)) + 1
	s.created = append(s.created, salary)
	return nil
}

func (s *salaryRepoStub) CommissionByUser(_ context.Context) (map[int64]int, error) {
	return s.percents, nil
}

type eventSink struct {
	mu       sync.Mutex
	received []events.Event
}

func (o *eventSink) Deliver(ev events.Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.received = append(o.received, ev)
	return nil
}

func (o *eventSink) events() []events.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]events.Event(nil), o.received...)
}
