// Package dto defines data transfer objects for the snapshots feature's HTTP transport layer.
package dto

import (
	"time"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
	"devsnap_backend/internal/feature/snapshots/usecase"
)

// CreateSnapshotReq is the capture payload submitted by the CLI.
// The section shapes are the domain types; they are plain data.
type CreateSnapshotReq struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	OS          *entity.OSData     `json:"os"`
	Editor      *entity.EditorData `json:"editor"`
	Shell       *entity.ShellData  `json:"shell"`
	Git         *entity.GitData    `json:"git"`
	Runtimes    entity.RuntimeList `json:"runtimes"`
	Packages    entity.PackageList `json:"packages"`
	CLIVersion  string             `json:"cliVersion"`
	CapturedAt  time.Time          `json:"capturedAt" binding:"required"`
}

// ToCaptureInput converts the request to the usecase input.
func (r *CreateSnapshotReq) ToCaptureInput() usecase.CaptureInput {
	return usecase.CaptureInput{
		Name:        r.Name,
		Description: r.Description,
		OSData:      r.OS,
		EditorData:  r.Editor,
		ShellData:   r.Shell,
		GitData:     r.Git,
		Runtimes:    r.Runtimes,
		Packages:    r.Packages,
		CLIVersion:  r.CLIVersion,
		CapturedAt:  r.CapturedAt,
	}
}

// UpdateSnapshotReq represents the request body for PATCH /snapshots/:id.
// Only name and description are editable; captured sections are immutable.
type UpdateSnapshotReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
