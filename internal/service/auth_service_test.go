package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/config"
	"github.com/spec-kit/scheduling-service/internal/domain"
)

type tokenStoreStub struct {
	revoked map[string]bool
}

func (s *tokenStoreStub) Revoke(_ context.Context, jti string, _ time.Time) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[jti] = true
	return nil
}

func (s *tokenStoreStub) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

func newAuthFixture(t *testing.T) (*AuthService, *tokenStoreStub) {
	t.Helper()

	hash, err := auth.HashPassword("correct-horse", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user := &domain.User{ID: 4, Email: "m@salon.kz", PasswordHash: hash, IsAdmin: true, Baitursynov: true}
	users := &userRepoStub{
		byID:    map[int64]*domain.User{4: user},
		byEmail: map[string]*domain.User{"m@salon.kz": user},
	}
	store := &tokenStoreStub{}

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 30,
		RefreshTokenTTLDays:   1,
	}}
	return NewAuthService(cfg, users, store, zap.NewNop()), store
}

func TestAuthLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	t.Run("issues token pair with resolved identity", func(t *testing.T) {
		user, pair, err := svc.Login(context.Background(), "m@salon.kz", "correct-horse")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if user.ID != 4 {
			t.Fatalf("user.ID = %d, want 4", user.ID)
		}

		claims, err := svc.TokenManager().Parse(pair.Access)
		if err != nil {
			t.Fatalf("Parse(access) error = %v", err)
		}
		if claims.Role != domain.RoleAdmin || claims.Branch != domain.BranchBaitursynov {
			t.Fatalf("unexpected claims: %+v", claims)
		}

		refreshClaims, err := svc.TokenManager().Parse(pair.Refresh)
		if err != nil {
			t.Fatalf("Parse(refresh) error = %v", err)
		}
		if refreshClaims.TokenType != auth.TokenTypeRefresh {
			t.Fatalf("refresh TokenType = %q", refreshClaims.TokenType)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if _, _, err := svc.Login(context.Background(), "m@salon.kz", "wrong"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		if _, _, err := svc.Login(context.Background(), "nobody@salon.kz", "correct-horse"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAuthRefresh(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, pair, err := svc.Login(context.Background(), "m@salon.kz", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	t.Run("exchanges refresh for fresh access token", func(t *testing.T) {
		access, _, err := svc.Refresh(context.Background(), pair.Refresh)
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		claims, err := svc.TokenManager().Parse(access)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if claims.TokenType != auth.TokenTypeAccess {
			t.Fatalf("TokenType = %q, want access", claims.TokenType)
		}
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		if _, _, err := svc.Refresh(context.Background(), pair.Access); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("revoked refresh token rejected", func(t *testing.T) {
		svc.Logout(context.Background(), pair.Refresh)
		if _, _, err := svc.Refresh(context.Background(), pair.Refresh); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAuthLogout(t *testing.T) {
	svc, store := newAuthFixture(t)

	_, pair, err := svc.Login(context.Background(), "m@salon.kz", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	svc.Logout(context.Background(), pair.Access, pair.Refresh, "", "garbage")

	if len(store.revoked) != 2 {
		t.Fatalf("revoked %d token ids, want 2", len(store.revoked))
	}
}
