package dto

import (
	"time"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
)

// SnapshotResponse is the full snapshot returned for single-snapshot reads.
type SnapshotResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	OS          *entity.OSData     `json:"os,omitempty"`
	Editor      *entity.EditorData `json:"editor,omitempty"`
	Shell       *entity.ShellData  `json:"shell,omitempty"`
	Git         *entity.GitData    `json:"git,omitempty"`
	Runtimes    entity.RuntimeList `json:"runtimes,omitempty"`
	Packages    entity.PackageList `json:"packages,omitempty"`
	CLIVersion  string             `json:"cliVersion,omitempty"`
	CapturedAt  time.Time          `json:"capturedAt"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// SnapshotResponseFromEntity converts a domain snapshot to its response shape.
func SnapshotResponseFromEntity(s *entity.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		OS:          s.OSData,
		Editor:      s.EditorData,
		Shell:       s.ShellData,
		Git:         s.GitData,
		Runtimes:    s.Runtimes,
		Packages:    s.Packages,
		CLIVersion:  s.CLIVersion,
		CapturedAt:  s.CapturedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SnapshotSummary is the list-view shape: metadata without captured sections.
type SnapshotSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CLIVersion  string    `json:"cliVersion,omitempty"`
	CapturedAt  time.Time `json:"capturedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SnapshotSummaryFromEntity converts a domain snapshot to its list shape.
func SnapshotSummaryFromEntity(s *entity.Snapshot) SnapshotSummary {
	return SnapshotSummary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CLIVersion:  s.CLIVersion,
		CapturedAt:  s.CapturedAt,
		CreatedAt:   s.CreatedAt,
	}
}
