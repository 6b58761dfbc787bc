package model

import (
	"time"

	"github.com/google/uuid"
)

// PlacementDocument is a reference to uploaded evidence (splits sheet,
// cue sheet, license). Storage lives elsewhere; we only keep the
// identifier and never read file contents.
type PlacementDocument struct {
	DocumentID           uuid.UUID `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentSubmissionID uuid.UUID `gorm:"column:document_submission_id;type:uuid;not null;index" json:"document_submission_id"`

	DocumentFileName string `gorm:"column:document_file_name;type:varchar(255);not null" json:"document_file_name"`
	DocumentFileURL  string `gorm:"column:document_file_url;type:text;not null" json:"document_file_url"`

	DocumentUploadedAt time.Time `gorm:"column:document_uploaded_at;autoCreateTime" json:"document_uploaded_at"`
}

func (PlacementDocument) TableName() string {
	return "placement_documents"
}
