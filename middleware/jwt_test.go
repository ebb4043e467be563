package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, key []byte, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Username: "salvatore",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestJWT(t *testing.T) {
	key := []byte("test-secret")

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("username").(string))
	}, JWT(key))

	request := func(auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if auth != "" {
			req.Header.Set(echo.HeaderAuthorization, auth)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	valid := signedToken(t, key, time.Now().Add(time.Hour))

	rec := request(valid)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "salvatore", rec.Body.String())

	// Bearer prefix is stripped
	rec = request("Bearer " + valid)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request("")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request("garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(signedToken(t, []byte("other-key"), time.Now().Add(time.Hour)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(signedToken(t, key, time.Now().Add(-time.Hour)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
