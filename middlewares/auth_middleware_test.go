package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub uint, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": "Test Parent",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func run(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return rec, h(c)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tok := signToken(t, 42, "parent", time.Hour)
	rec, err := run(t, "Bearer "+tok, RequireAuth(testSecret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	_, err := run(t, "", RequireAuth(testSecret))
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	tok := signToken(t, 42, "parent", -time.Hour)
	_, err := run(t, "Bearer "+tok, RequireAuth(testSecret))
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"sub": 1, "role": "parent", "exp": time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, herr := run(t, "Bearer "+tok, RequireAuth(testSecret))
	httpErr, ok := herr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireRole(t *testing.T) {
	parentTok := signToken(t, 42, "parent", time.Hour)

	rec, err := run(t, "Bearer "+parentTok, RequireAuth(testSecret), RequireRole("parent"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = run(t, "Bearer "+parentTok, RequireAuth(testSecret), RequireRole("staff", "admin"))
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
