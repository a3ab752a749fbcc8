package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/domain"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

func TestUserCreate(t *testing.T) {
	existing := &domain.User{ID: 1, Email: "taken@salon.kz"}
	users := &userRepoStub{
		byID:    map[int64]*domain.User{1: existing},
		byEmail: map[string]*domain.User{"taken@salon.kz": existing},
	}
	svc := NewUserService(users, 4)

	t.Run("hashes password on create", func(t *testing.T) {
		user, err := svc.Create(context.Background(), UserCreateInput{
			Email:       "new@salon.kz",
			Password:    "plaintext",
			Baitursynov: true,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if user.PasswordHash == "plaintext" || user.PasswordHash == "" {
			t.Fatal("password must be stored hashed")
		}
		if err := auth.ComparePassword(user.PasswordHash, "plaintext"); err != nil {
			t.Fatalf("stored hash does not verify: %v", err)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Create(context.Background(), UserCreateInput{
			Email:    "taken@salon.kz",
			Password: "whatever",
		})
		if err == nil {
			t.Fatal("expected error")
		}
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
			t.Fatalf("expected CONFLICT, got %v", err)
		}
	})
}
