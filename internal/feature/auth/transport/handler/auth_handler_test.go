package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsnap_backend/internal/feature/auth/usecase"
)

// fakeAuthUsecase returns canned results per method.
type fakeAuthUsecase struct {
	requestErr error
	verifyJWT  string
	verifyErr  error
	requested  []string
}

func (f *fakeAuthUsecase) RequestSignIn(_ context.Context, email string) error {
	f.requested = append(f.requested, email)
	return f.requestErr
}

func (f *fakeAuthUsecase) VerifySignIn(_ context.Context, _, _ string) (string, error) {
	return f.verifyJWT, f.verifyErr
}

func setupAuthRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/signin", h.SignIn)
	r.POST("/auth/verify", h.Verify)
	return r
}

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		requestErr error
		wantStatus int
	}{
		{"accepted", `{"email":"dev@example.com"}`, nil, http.StatusAccepted},
		{"missing email", `{}`, nil, http.StatusBadRequest},
		{"malformed address", `{"email":"dev@example.com"}`, usecase.ErrInvalidEmail, http.StatusBadRequest},
		{"malformed JSON", `{`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeAuthUsecase{requestErr: tt.requestErr}
			r := setupAuthRouter(NewAuthHandler(uc))

			req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	body := `{"email":"dev@example.com","token":"abcdef"}`

	t.Run("valid code returns a JWT", func(t *testing.T) {
		uc := &fakeAuthUsecase{verifyJWT: "signed-jwt"}
		r := setupAuthRouter(NewAuthHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/auth/verify", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-jwt", resp["token"])
	})

	t.Run("wrong and expired codes answer the same 401", func(t *testing.T) {
		for _, verifyErr := range []error{usecase.ErrTokenNotFound, usecase.ErrTokenExpired} {
			uc := &fakeAuthUsecase{verifyErr: verifyErr}
			r := setupAuthRouter(NewAuthHandler(uc))

			req := httptest.NewRequest(http.MethodPost, "/auth/verify", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "invalid or expired", "the response must not say which")
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&fakeAuthUsecase{}))

		req := httptest.NewRequest(http.MethodPost, "/auth/verify", strings.NewReader(`{"email":"dev@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
