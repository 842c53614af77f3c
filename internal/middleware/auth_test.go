package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
	"github.com/ReeseAstor/88Away-sub000/internal/httputil"
)

type fakeVerifier struct {
	claims *models.AuthClaims
	err    error
}

func (f *fakeVerifier) VerifyToken(string) (*models.AuthClaims, error) {
	return f.claims, f.err
}

func (f *fakeVerifier) Close() error { return nil }

func userClaims(userID string) *models.AuthClaims {
	return &models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		Role:             "authenticated",
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		authHeader string
		verifier   *fakeVerifier
		wantStatus int
		wantUserID string
	}{
		{
			name:       "health is public",
			path:       "/health",
			verifier:   &fakeVerifier{err: errors.New("should not be called")},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			path:       "/api/projects/p1/analytics",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			path:       "/api/projects/p1/analytics",
			authHeader: "Basic dXNlcjpwYXNz",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			path:       "/api/projects/p1/analytics",
			authHeader: "Bearer bad-token",
			verifier:   &fakeVerifier{err: errors.New("signature mismatch")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token passes user through",
			path:       "/api/projects/p1/analytics",
			authHeader: "Bearer good-token",
			verifier:   &fakeVerifier{claims: userClaims("u1")},
			wantStatus: http.StatusOK,
			wantUserID: "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = httputil.GetUserID(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.verifier)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantUserID != "" && gotUserID != tt.wantUserID {
				t.Errorf("user ID = %q, want %q", gotUserID, tt.wantUserID)
			}
		})
	}
}
