package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/models"
)

func signToken(t *testing.T, claims *models.JwtCustomClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func validClaims(role string) *models.JwtCustomClaims {
	return &models.JwtCustomClaims{
		UserID: 9,
		Email:  "admin@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func invokeJWTAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/get-user", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := JWTAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestJWTAuthStoresClaims(t *testing.T) {
	token := signToken(t, validClaims("admin"), JWTSecret())

	c, err := invokeJWTAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}

	claims := CurrentUser(c)
	if claims == nil {
		t.Fatal("no claims stored in context")
	}
	if claims.UserID != 9 || claims.Role != "admin" {
		t.Errorf("claims = %+v, want user 9 / admin", claims)
	}
}

func TestJWTAuthRejects(t *testing.T) {
	expired := validClaims("admin")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + signToken(t, validClaims("admin"), "some-other-secret")},
		{name: "expired token", header: "Bearer " + signToken(t, expired, JWTSecret())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invokeJWTAuth(t, tt.header)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if he.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", he.Code)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		claims   *models.JwtCustomClaims
		wantCode int
	}{
		{name: "admin passes", claims: validClaims("admin"), wantCode: 0},
		{name: "reader forbidden", claims: validClaims("user"), wantCode: http.StatusForbidden},
		{name: "no claims", claims: nil, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/auth/notifications", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			if tt.claims != nil {
				c.Set("user", tt.claims)
			}

			handler := RequireAdmin()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			err := handler(c)

			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("admin rejected: %v", err)
				}
				return
			}
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if he.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", he.Code, tt.wantCode)
			}
		})
	}
}
