package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/repository"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

const (
	// AccessCookieName and RefreshCookieName match what the browser frontend
	// expects.
	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"

	principalKey = "auth_principal"
)

// Principal represents the authenticated caller with its resolved identity.
type Principal struct {
	User     *domain.User
	Identity domain.Identity
}

// TokenStore checks and records revoked token ids.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware validates tokens and loads principals. Tokens are read from
// the access cookie, with an Authorization bearer fallback for non-browser
// clients.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
	store  TokenStore
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, store TokenStore, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, store: store, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" {
		return apperrors.NewUnauthorized("not authenticated")
	}

	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if claims.TokenType != TokenTypeAccess {
		return apperrors.NewUnauthorized("access token required")
	}

	// Denylist check is best effort: an unreachable Redis must not lock
	// everyone out.
	if revoked, err := m.store.IsRevoked(c.Context(), claims.ID); err != nil {
		m.logger.Debug("token denylist unavailable", zap.Error(err))
	} else if revoked {
		return apperrors.NewUnauthorized("token revoked")
	}

	userID, err := claims.UserID()
	if err != nil {
		return apperrors.NewUnauthorized("invalid token subject")
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}

	// Role and branch are derived once here and carried on the principal;
	// nothing downstream re-reads the raw flags for access decisions.
	c.Locals(principalKey, &Principal{
		User:     user,
		Identity: domain.ResolveIdentity(user),
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(AccessCookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
