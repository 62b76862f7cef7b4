// Package handler provides HTTP handlers for the sharelinks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	"devsnap_backend/internal/feature/sharelinks/transport/http/dto"
	"devsnap_backend/internal/feature/sharelinks/usecase"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
	jwtmw "devsnap_backend/internal/platform/jwt"
)

// sharePasswordHeader carries the password for protected links. A header
// keeps the password out of access logs, unlike a query parameter.
const sharePasswordHeader = "X-Share-Password"

// ShareLinkUsecase defines the share-link operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ShareLinkUsecase interface {
	Create(ctx context.Context, callerID, snapshotID string, in usecase.CreateInput) (*entity.ShareLink, error)
	Resolve(ctx context.Context, slug, password string) (*snapentity.Snapshot, *entity.ShareLink, error)
	ListForSnapshot(ctx context.Context, callerID, snapshotID string) ([]*entity.ShareLink, error)
	Delete(ctx context.Context, callerID, id string) error
}

// AttemptLimiter throttles resolution attempts per key.
type AttemptLimiter interface {
	Allow(key string) bool
}

// ShareLinkHandler handles HTTP requests for share links, both the owner
// surface and the public share page.
type ShareLinkHandler struct {
	links   ShareLinkUsecase
	limiter AttemptLimiter
}

// NewShareLinkHandler creates a new instance of ShareLinkHandler.
func NewShareLinkHandler(links ShareLinkUsecase, limiter AttemptLimiter) *ShareLinkHandler {
	return &ShareLinkHandler{links: links, limiter: limiter}
}

// Create handles POST /snapshots/:id/share.
func (h *ShareLinkHandler) Create(c *gin.Context) {
	var req dto.CreateShareLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	callerID := jwtmw.UserID(c)

	link, err := h.links.Create(c.Request.Context(), callerID, c.Param("id"), usecase.CreateInput{
		Visibility: req.Visibility,
		Password:   req.Password,
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSnapshotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your snapshot"})
		case errors.Is(err, usecase.ErrPasswordMissing), errors.Is(err, usecase.ErrInvalidVisibility):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrSlugExhausted):
			c.JSON(http.StatusConflict, gin.H{"error": "could not allocate a slug, try again"})
		default:
			slog.Error("share link create failed", "error", err, "user_id", callerID, "snapshot_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create share link"})
		}
		return
	}
	slog.Info("share link created", "slug", link.Slug, "snapshot_id", link.SnapshotID, "visibility", link.Visibility)
	c.JSON(http.StatusCreated, dto.ShareLinkResponseFromEntity(link))
}

// List handles GET /snapshots/:id/share.
func (h *ShareLinkHandler) List(c *gin.Context) {
	callerID := jwtmw.UserID(c)
	links, err := h.links.ListForSnapshot(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSnapshotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your snapshot"})
		default:
			slog.Error("share link list failed", "error", err, "user_id", callerID, "snapshot_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list share links"})
		}
		return
	}

	out := make([]dto.ShareLinkResponse, len(links))
	for i, l := range links {
		out[i] = dto.ShareLinkResponseFromEntity(l)
	}
	c.JSON(http.StatusOK, gin.H{"shareLinks": out})
}

// Delete handles DELETE /share-links/:id. Idempotent: an absent link answers 204.
func (h *ShareLinkHandler) Delete(c *gin.Context) {
	callerID := jwtmw.UserID(c)
	if err := h.links.Delete(c.Request.Context(), callerID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your share link"})
			return
		}
		slog.Error("share link delete failed", "error", err, "user_id", callerID, "link_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete share link"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Resolve handles GET /s/:slug, the public share page. Resolution outcomes
// map to distinct statuses: 404 unknown slug, 410 expired, 401 password
// required or wrong, 200 with the snapshot on success. Attempts are
// rate-limited per client IP and slug to slow password guessing.
func (h *ShareLinkHandler) Resolve(c *gin.Context) {
	slug := c.Param("slug")

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()+":"+slug) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, slow down"})
		return
	}

	snapshot, link, err := h.links.Resolve(c.Request.Context(), slug, c.GetHeader(sharePasswordHeader))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "share link not found"})
		case errors.Is(err, usecase.ErrLinkExpired):
			c.JSON(http.StatusGone, gin.H{"error": "share link has expired"})
		case errors.Is(err, usecase.ErrPasswordRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "password required"})
		default:
			slog.Error("share resolve failed", "error", err, "slug", slug)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve share link"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ResolvedShareResponseFrom(snapshot, link))
}
