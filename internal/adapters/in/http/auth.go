package http

import (
	"errors"
	"net/http"
	"strings"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "authenticatedActor"

type jwtClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// authenticate parses the bearer token and builds the requesting actor.
// The token subject carries the actor ID; the role claim carries CLIENT or
// OPERATOR.
func authenticate(token string, secret string) (actor.Actor, error) {
	if strings.TrimSpace(secret) == "" {
		return actor.Actor{}, errors.New("jwt secret not configured")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &jwtClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return actor.Actor{}, err
	}
	if !parsed.Valid {
		return actor.Actor{}, errors.New("invalid token")
	}

	actorID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(actorID, role)
}

func bearerToken(authz string) (string, bool) {
	parts := strings.Fields(authz)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// NewAuthMiddleware returns an echo middleware that authenticates every
// request with a bearer JWT and stores the resulting actor in the request
// context.
func NewAuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := strings.TrimSpace(c.Request().Header.Get("Authorization"))

			token, ok := bearerToken(authz)
			if !ok {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				})
			}

			requester, err := authenticate(token, jwtSecret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid credentials",
				})
			}

			c.Set(actorContextKey, requester)
			return next(c)
		}
	}
}

// requesterFrom extracts the authenticated actor placed by the middleware.
func requesterFrom(c echo.Context) (actor.Actor, bool) {
	requester, ok := c.Get(actorContextKey).(actor.Actor)
	return requester, ok
}
