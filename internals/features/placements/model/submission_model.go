package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionStatus is the placement review lifecycle state.
type SubmissionStatus string

const (
	StatusPending            SubmissionStatus = "PENDING"
	StatusDocumentsRequested SubmissionStatus = "DOCUMENTS_REQUESTED"
	StatusApproved           SubmissionStatus = "APPROVED"
	StatusDenied             SubmissionStatus = "DENIED"
)

// IsTerminal: APPROVED and DENIED are never left again by this workflow.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// IsReviewable: states an admin decision (approve/deny) may act on.
func (s SubmissionStatus) IsReviewable() bool {
	return s == StatusPending || s == StatusDocumentsRequested
}

// IsCreatorEditable: states the owning creator may still edit in.
// Admins are not bound by this set.
func (s SubmissionStatus) IsCreatorEditable() bool {
	return s == StatusPending || s == StatusDocumentsRequested
}

type PlacementSubmission struct {
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`

	// Assigned exactly once, at approval. Never reassigned.
	SubmissionCaseNumber *string `gorm:"column:submission_case_number;type:varchar(20);unique" json:"submission_case_number,omitempty"`

	SubmissionUserID uuid.UUID `gorm:"column:submission_user_id;type:uuid;not null;index" json:"submission_user_id"`

	SubmissionTitle       string `gorm:"column:submission_title;type:varchar(255);not null" json:"submission_title"`
	SubmissionArtist      string `gorm:"column:submission_artist;type:varchar(255);not null" json:"submission_artist"`
	SubmissionAlbum       string `gorm:"column:submission_album;type:varchar(255)" json:"submission_album"`
	SubmissionISRC        string `gorm:"column:submission_isrc;type:varchar(20)" json:"submission_isrc"`
	SubmissionGenre       string `gorm:"column:submission_genre;type:varchar(100)" json:"submission_genre"`
	SubmissionReleaseYear *int   `gorm:"column:submission_release_year" json:"submission_release_year,omitempty"`
	SubmissionLabel       string `gorm:"column:submission_label;type:varchar(255)" json:"submission_label"`
	SubmissionNotes       string `gorm:"column:submission_notes;type:text" json:"submission_notes"`

	SubmissionStatus SubmissionStatus `gorm:"column:submission_status;type:varchar(25);not null;default:'PENDING';index" json:"submission_status"`

	SubmissionReviewedBy *uuid.UUID `gorm:"column:submission_reviewed_by;type:uuid" json:"submission_reviewed_by,omitempty"`
	SubmissionReviewedAt *time.Time `gorm:"column:submission_reviewed_at" json:"submission_reviewed_at,omitempty"`

	SubmissionDenialReason       string `gorm:"column:submission_denial_reason;type:text" json:"submission_denial_reason,omitempty"`
	SubmissionDocumentsRequested string `gorm:"column:submission_documents_requested;type:text" json:"submission_documents_requested,omitempty"`

	// Refreshed on every resubmission.
	SubmissionSubmittedAt time.Time `gorm:"column:submission_submitted_at;not null" json:"submission_submitted_at"`

	Credits   []PlacementCredit   `gorm:"foreignKey:CreditSubmissionID;references:SubmissionID" json:"credits,omitempty"`
	Documents []PlacementDocument `gorm:"foreignKey:DocumentSubmissionID;references:SubmissionID" json:"documents,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PlacementSubmission) TableName() string {
	return "placement_submissions"
}
