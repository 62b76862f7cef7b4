// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devsnap_backend/internal/feature/auth/transport/http/dto"
	"devsnap_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the sign-in operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// RequestSignIn issues a sign-in token for the address and mails it.
	RequestSignIn(ctx context.Context, email string) error
	// VerifySignIn exchanges a valid token for a signed JWT.
	VerifySignIn(ctx context.Context, email, token string) (string, error)
}

// AuthHandler handles HTTP requests for passwordless sign-in.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignIn handles POST /auth/signin. It always answers 202 on a well-formed
// address so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.auth.RequestSignIn(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
			return
		}
		slog.Error("signin request failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start sign-in"})
		return
	}
	slog.Info("sign-in token issued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusAccepted, gin.H{"message": "check your email for a sign-in code"})
}

// Verify handles POST /auth/verify. Wrong, replayed and expired codes all
// answer the same 401 so nothing is revealed about outstanding tokens.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	token, err := h.auth.VerifySignIn(c.Request.Context(), req.Email, req.Token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
			return
		}
		if errors.Is(err, usecase.ErrTokenNotFound) || errors.Is(err, usecase.ErrTokenExpired) {
			slog.Warn("verify rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired sign-in code"})
			return
		}
		slog.Error("verify failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		return
	}
	slog.Info("user sign-in successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}
