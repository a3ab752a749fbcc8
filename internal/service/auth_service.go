package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/config"
	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// TokenPair bundles the issued tokens with their expiries.
type TokenPair struct {
	Access           string
	AccessExpiresAt  time.Time
	Refresh          string
	RefreshExpiresAt time.Time
}

// AuthService coordinates login, refresh and logout flows.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	store    auth.TokenStore
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, store auth.TokenStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL()),
		store:    store,
		logger:   logger,
	}
}

// TokenManager exposes the manager for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies credentials and issues a role/branch-bearing token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid password")
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// identity is re-resolved from the stored user so flag changes take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.tokenMgr.Parse(refreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
	}
	if revoked, err := s.store.IsRevoked(ctx, claims.ID); err == nil && revoked {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("user not found")
		}
		return "", time.Time{}, err
	}

	return s.issueAccess(user)
}

// Logout revokes both tokens until their natural expiry. Best effort: an
// unreachable denylist store does not fail the logout.
func (s *AuthService) Logout(ctx context.Context, tokens ...string) {
	for _, tokenStr := range tokens {
		if tokenStr == "" {
			continue
		}
		claims, err := s.tokenMgr.Parse(tokenStr)
		if err != nil {
			continue
		}
		if err := s.store.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			s.logger.Debug("token revocation failed", zap.Error(err))
		}
	}
}

func (s *AuthService) issuePair(user *domain.User) (*TokenPair, error) {
	identity := domain.ResolveIdentity(user)

	access, accessExp, err := s.tokenMgr.Generate(user.ID, identity, auth.TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.tokenMgr.Generate(user.ID, identity, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		Access:           access,
		AccessExpiresAt:  accessExp,
		Refresh:          refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *AuthService) issueAccess(user *domain.User) (string, time.Time, error) {
	return s.tokenMgr.Generate(user.ID, domain.ResolveIdentity(user), auth.TokenTypeAccess)
}
