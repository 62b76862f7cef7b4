// Package dto defines data transfer objects for the sharelinks feature's HTTP transport layer.
package dto

import (
	"time"

	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
	snapdto "devsnap_backend/internal/feature/snapshots/transport/http/dto"
)

// CreateShareLinkReq represents the request body for POST /snapshots/:id/share.
type CreateShareLinkReq struct {
	// Visibility is public, unlisted or private; defaults to public.
	Visibility string `json:"visibility"`
	// Password is required for private links, optional otherwise.
	Password string `json:"password"`
	// ExpiresAt, when set, makes the link expire at that time.
	ExpiresAt *time.Time `json:"expiresAt"`
}

// ShareLinkResponse is the owner-facing shape of a share link. The password
// hash is never serialized; Protected signals that a password is set.
type ShareLinkResponse struct {
	ID         string     `json:"id"`
	SnapshotID string     `json:"snapshotId"`
	Slug       string     `json:"slug"`
	Visibility string     `json:"visibility"`
	Protected  bool       `json:"protected"`
	ViewCount  int64      `json:"viewCount"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ShareLinkResponseFromEntity converts a domain share link to its response shape.
func ShareLinkResponseFromEntity(l *entity.ShareLink) ShareLinkResponse {
	return ShareLinkResponse{
		ID:         l.ID,
		SnapshotID: l.SnapshotID,
		Slug:       l.Slug,
		Visibility: string(l.Visibility),
		Protected:  l.PasswordGated(),
		ViewCount:  l.ViewCount,
		ExpiresAt:  l.ExpiresAt,
		CreatedAt:  l.CreatedAt,
	}
}

// ResolvedShareResponse is the public share-page payload: the snapshot plus
// the link it was reached through.
type ResolvedShareResponse struct {
	Snapshot snapdto.SnapshotResponse `json:"snapshot"`
	Link     ShareLinkResponse        `json:"link"`
}

// ResolvedShareResponseFrom builds the share-page payload.
func ResolvedShareResponseFrom(s *snapentity.Snapshot, l *entity.ShareLink) ResolvedShareResponse {
	return ResolvedShareResponse{
		Snapshot: snapdto.SnapshotResponseFromEntity(s),
		Link:     ShareLinkResponseFromEntity(l),
	}
}
