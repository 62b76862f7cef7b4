package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devsnap_backend/internal/feature/auth/domain/entity"
	"devsnap_backend/internal/feature/auth/transport/http/dto"
	"devsnap_backend/internal/feature/auth/usecase"
	jwtmw "devsnap_backend/internal/platform/jwt"
)

// UserUsecase defines the account operations the handler needs.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, name, image *string) (*entity.User, error)
	ChangePlan(ctx context.Context, userID string, plan string) error
	DeleteAccount(ctx context.Context, userID string) error
}

// UserHandler handles HTTP requests on the authenticated user's account.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetProfile(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", jwtmw.UserID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// UpdateMe handles PATCH /me: display name, avatar image and plan changes.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID := jwtmw.UserID(c)

	if req.Plan != nil {
		if err := h.users.ChangePlan(c.Request.Context(), userID, *req.Plan); err != nil {
			switch {
			case errors.Is(err, usecase.ErrInvalidPlan):
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan"})
			case errors.Is(err, usecase.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			default:
				slog.Error("plan change failed", "error", err, "user_id", userID)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not change plan"})
			}
			return
		}
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req.Name, req.Image)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// DeleteMe handles DELETE /me. Removes the account, every owned snapshot and,
// transitively, all of their share links.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := jwtmw.UserID(c)
	if err := h.users.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("account deletion failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete account"})
		return
	}
	slog.Info("account deleted", "user_id", userID)
	c.Status(http.StatusNoContent)
}
