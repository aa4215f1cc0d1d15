package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"publicity/internal/model"
	"publicity/internal/repository"
)

// contextUserKey is where the guard stores the resolved identity on the echo
// context for the duration of the request.
const contextUserKey = "auth.user"

// Guard resolves the caller's identity on routes that require authentication.
//
// Credentials arrive over HTTP Basic Auth. The username slot carries either a
// bearer token or a nickname: the guard tries token verification first and
// falls back to nickname/password on any token failure, matching how clients
// swap a token in place of their login once they hold one. A plain
// "Authorization: Bearer" header is accepted as well.
type Guard struct {
	users  repository.UserRepository
	tokens *TokenService
}

// NewGuard creates a guard over the given user store and token service.
func NewGuard(users repository.UserRepository, tokens *TokenService) *Guard {
	return &Guard{users: users, tokens: tokens}
}

// CurrentUser returns the identity resolved by the guard, or nil on
// unauthenticated routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(contextUserKey).(*model.User)
	return user
}

// Middleware rejects the request with 401 before any handler logic runs
// unless one of the credential paths yields a valid user.
func (g *Guard) Middleware() echo.MiddlewareFunc {
	basic := middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm:     "publicity",
		Validator: g.validateBasic,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				user, err := g.resolveToken(c.Request().Context(), token)
				if err != nil {
					return echo.NewHTTPError(401, "invalid or expired token")
				}
				c.Set(contextUserKey, user)
				return next(c)
			}
			return basic(next)(c)
		}
	}
}

func (g *Guard) validateBasic(username, password string, c echo.Context) (bool, error) {
	ctx := c.Request().Context()

	// first try to authenticate by token
	if user, err := g.resolveToken(ctx, username); err == nil {
		c.Set(contextUserKey, user)
		return true, nil
	}

	// try to authenticate with nickname/password
	user, err := g.users.FindByNickname(ctx, username)
	if err != nil {
		return false, nil
	}
	if !CheckPassword(password, user.PasswordHash) {
		return false, nil
	}

	c.Set(contextUserKey, user)
	return true, nil
}

func (g *Guard) resolveToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := g.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return g.users.FindByID(ctx, userID)
}
