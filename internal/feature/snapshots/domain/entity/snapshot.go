// Package entity defines the domain entities for the snapshots feature.
package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OSData describes the operating system of the captured machine.
type OSData struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Version  string `json:"version"`
}

// Extension is a single installed editor extension.
type Extension struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	Publisher string `json:"publisher"`
}

// EditorData describes the captured editor, its extensions and settings.
type EditorData struct {
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Extensions []Extension    `json:"extensions"`
	Settings   map[string]any `json:"settings,omitempty"`
}

// ShellData describes the captured shell configuration.
type ShellData struct {
	Type    string   `json:"type"`
	Config  string   `json:"config"`
	Theme   string   `json:"theme,omitempty"`
	Plugins []string `json:"plugins,omitempty"`
}

// GitData describes the captured git identity and aliases.
type GitData struct {
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Aliases   map[string]string `json:"aliases,omitempty"`
}

// Runtime is a single installed language runtime.
type Runtime struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Manager string `json:"manager,omitempty"`
}

// Package is a single globally installed package.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source"`
}

// RuntimeList is a JSON-column slice of runtimes.
type RuntimeList []Runtime

// PackageList is a JSON-column slice of packages.
type PackageList []Package

// Snapshot is one structured capture of a development environment, owned by
// exactly one user. The captured sections are immutable after creation; a new
// capture produces a new snapshot. Only Name and Description may be edited.
type Snapshot struct {
	// ID is the unique identifier for the snapshot (UUID string).
	ID string `gorm:"primaryKey;size:36"`

	// UserID is the owning user. Deleting the user deletes the snapshot.
	UserID string `gorm:"size:36;not null;index"`

	// Name is the owner-visible title of the capture.
	Name string `gorm:"size:255;not null"`

	// Description is optional free text.
	Description string

	// Captured data stored as JSON columns.
	OSData     *OSData     `gorm:"type:jsonb"`
	EditorData *EditorData `gorm:"type:jsonb"`
	ShellData  *ShellData  `gorm:"type:jsonb"`
	GitData    *GitData    `gorm:"type:jsonb"`
	Runtimes   RuntimeList `gorm:"type:jsonb"`
	Packages   PackageList `gorm:"type:jsonb"`

	// CLIVersion is the version of the capture tool that produced the payload.
	CLIVersion string `gorm:"size:32"`

	// CapturedAt is when the capture ran on the machine. It may predate
	// CreatedAt when an offline CLI run is submitted later.
	CapturedAt time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// scanJSON decodes a JSON column value produced by either the postgres or the
// sqlite driver.
func scanJSON(dst any, src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported source type %T for JSON column", src)
	}
}

func (d *OSData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *OSData) Scan(src any) error { return scanJSON(d, src) }

func (d *EditorData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *EditorData) Scan(src any) error { return scanJSON(d, src) }

func (d *ShellData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *ShellData) Scan(src any) error { return scanJSON(d, src) }

func (d *GitData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *GitData) Scan(src any) error { return scanJSON(d, src) }

func (l RuntimeList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *RuntimeList) Scan(src any) error { return scanJSON(l, src) }

func (l PackageList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *PackageList) Scan(src any) error { return scanJSON(l, src) }
