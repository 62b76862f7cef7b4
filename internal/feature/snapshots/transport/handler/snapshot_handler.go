// Package handler provides HTTP handlers for the snapshots feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
	"devsnap_backend/internal/feature/snapshots/transport/http/dto"
	"devsnap_backend/internal/feature/snapshots/usecase"
	jwtmw "devsnap_backend/internal/platform/jwt"
)

// SnapshotUsecase defines the snapshot store operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SnapshotUsecase interface {
	SubmitCapture(ctx context.Context, ownerID string, in usecase.CaptureInput) (*entity.Snapshot, error)
	Get(ctx context.Context, callerID, id string) (*entity.Snapshot, error)
	List(ctx context.Context, callerID string) ([]*entity.Snapshot, error)
	UpdateMetadata(ctx context.Context, callerID, id string, name, description *string) (*entity.Snapshot, error)
	Delete(ctx context.Context, callerID, id string) error
}

// SnapshotHandler handles HTTP requests for owned snapshots.
type SnapshotHandler struct {
	snapshots SnapshotUsecase
}

// NewSnapshotHandler creates a new instance of SnapshotHandler.
func NewSnapshotHandler(snapshots SnapshotUsecase) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// Create handles POST /snapshots: a capture payload becomes a new snapshot.
func (h *SnapshotHandler) Create(c *gin.Context) {
	var req dto.CreateSnapshotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	callerID := jwtmw.UserID(c)

	snapshot, err := h.snapshots.SubmitCapture(c.Request.Context(), callerID, req.ToCaptureInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSnapshot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrOwnerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		default:
			slog.Error("snapshot create failed", "error", err, "user_id", callerID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store snapshot"})
		}
		return
	}
	slog.Info("snapshot created", "snapshot_id", snapshot.ID, "user_id", callerID, "name", snapshot.Name)
	c.JSON(http.StatusCreated, dto.SnapshotResponseFromEntity(snapshot))
}

// List handles GET /snapshots: the caller's snapshots, most recent first.
func (h *SnapshotHandler) List(c *gin.Context) {
	callerID := jwtmw.UserID(c)
	snapshots, err := h.snapshots.List(c.Request.Context(), callerID)
	if err != nil {
		slog.Error("snapshot list failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list snapshots"})
		return
	}

	summaries := make([]dto.SnapshotSummary, len(snapshots))
	for i, s := range snapshots {
		summaries[i] = dto.SnapshotSummaryFromEntity(s)
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": summaries})
}

// Get handles GET /snapshots/:id.
func (h *SnapshotHandler) Get(c *gin.Context) {
	snapshot, err := h.snapshots.Get(c.Request.Context(), jwtmw.UserID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "snapshot get failed")
		return
	}
	c.JSON(http.StatusOK, dto.SnapshotResponseFromEntity(snapshot))
}

// Update handles PATCH /snapshots/:id: name/description only.
func (h *SnapshotHandler) Update(c *gin.Context) {
	var req dto.UpdateSnapshotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	snapshot, err := h.snapshots.UpdateMetadata(c.Request.Context(), jwtmw.UserID(c), c.Param("id"), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSnapshot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, err, "snapshot update failed")
		return
	}
	c.JSON(http.StatusOK, dto.SnapshotResponseFromEntity(snapshot))
}

// Delete handles DELETE /snapshots/:id. Deleting an already-deleted snapshot
// answers 204 as well; the operation is idempotent.
func (h *SnapshotHandler) Delete(c *gin.Context) {
	if err := h.snapshots.Delete(c.Request.Context(), jwtmw.UserID(c), c.Param("id")); err != nil {
		h.writeError(c, err, "snapshot delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps the shared error kinds to responses.
func (h *SnapshotHandler) writeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your snapshot"})
	default:
		slog.Error(logMsg, "error", err, "user_id", jwtmw.UserID(c), "snapshot_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
