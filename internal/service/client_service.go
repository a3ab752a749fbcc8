package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// ClientService manages customer records.
type ClientService struct {
	clients repository.ClientRepository
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// ClientCreateInput describes the client creation payload.
type ClientCreateInput struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Phone      *string
	Email      *string
	Visits     *int
}

// Create adds a customer record.
func (s *ClientService) Create(ctx context.Context, input ClientCreateInput) (*domain.Client, error) {
	client := &domain.Client{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		MiddleName: input.MiddleName,
		Phone:      input.Phone,
		Email:      input.Email,
		Visits:     input.Visits,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns all customer records; clients are not branch-scoped.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// Delete removes a customer record.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"client_id": id})
		}
		return err
	}
	return nil
}
