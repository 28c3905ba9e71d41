package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, role string, secret string) string {
	t.Helper()

	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func invokeMiddleware(token string) (*httptest.ResponseRecorder, actor.Actor, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var requester actor.Actor
	var authenticated bool
	handler := NewAuthMiddleware(testSecret)(func(c echo.Context) error {
		requester, authenticated = requesterFrom(c)
		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)
	return rec, requester, authenticated
}

func Test_AuthMiddleware_ValidToken(t *testing.T) {
	actorID := kernel.NewUUID()
	token := signToken(t, actorID.String(), "OPERATOR", testSecret)

	rec, requester, authenticated := invokeMiddleware(token)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, authenticated)
	assert.True(t, requester.ID().IsEqual(actorID))
	assert.True(t, requester.IsOperator())
}

func Test_AuthMiddleware_MissingToken(t *testing.T) {
	rec, _, authenticated := invokeMiddleware("")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, authenticated)
}

func Test_AuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, kernel.NewUUID().String(), "CLIENT", "other-secret")

	rec, _, authenticated := invokeMiddleware(token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, authenticated)
}

func Test_AuthMiddleware_ExpiredToken(t *testing.T) {
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Role: "CLIENT",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _, authenticated := invokeMiddleware(token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, authenticated)
}

func Test_AuthMiddleware_UnknownRole(t *testing.T) {
	token := signToken(t, kernel.NewUUID().String(), "ADMIN", testSecret)

	rec, _, authenticated := invokeMiddleware(token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, authenticated)
}

func Test_AuthMiddleware_MalformedSubject(t *testing.T) {
	token := signToken(t, "not-a-uuid", "CLIENT", testSecret)

	rec, _, authenticated := invokeMiddleware(token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, authenticated)
}

func Test_BearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def.ghi")
	require.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	_, ok = bearerToken("abc.def.ghi")
	assert.False(t, ok)

	_, ok = bearerToken("Basic dXNlcjpwYXNz")
	assert.False(t, ok)

	_, ok = bearerToken("")
	assert.False(t, ok)
}
