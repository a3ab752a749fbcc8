package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// UserService manages staff accounts.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// UserCreateInput describes the account creation payload.
type UserCreateInput struct {
	Email       string
	Password    string
	IsSuperuser bool
	IsAdmin     bool
	FirstName   *string
	LastName    *string
	MiddleName  *string
	Baitursynov bool
	Gagarina    bool
	Position    *string
}

// Create adds a staff account. Any authenticated caller may do this; only
// visibility, not mutation, is role-gated.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		IsSuperuser:  input.IsSuperuser,
		IsAdmin:      input.IsAdmin,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		Baitursynov:  input.Baitursynov,
		Gagarina:     input.Gagarina,
		Position:     input.Position,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every staff account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListSpecialists returns the line employees: neither superuser nor admin.
func (s *UserService) ListSpecialists(ctx context.Context) ([]domain.User, error) {
	return s.users.ListSpecialists(ctx)
}
