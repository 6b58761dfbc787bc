package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Clearance states per royalty type. A new deal starts "collecting":
// tracking has begun, nothing confirmed yet.
const (
	ClearanceCollecting = "collecting"
	ClearanceCleared    = "cleared"
	ClearanceDisputed   = "disputed"
)

// Deal is the royalty-tracking record spawned when a placement is
// approved. Creation is append-only and one-way: the submission keeps
// no reference back.
type Deal struct {
	DealID uuid.UUID `gorm:"column:deal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"deal_id"`

	DealCaseNumber string `gorm:"column:deal_case_number;type:varchar(20);not null;index" json:"deal_case_number"`

	DealTitle  string `gorm:"column:deal_title;type:varchar(255);not null" json:"deal_title"`
	DealArtist string `gorm:"column:deal_artist;type:varchar(255);not null" json:"deal_artist"`
	DealAlbum  string `gorm:"column:deal_album;type:varchar(255)" json:"deal_album"`
	DealISRC   string `gorm:"column:deal_isrc;type:varchar(20)" json:"deal_isrc"`
	DealGenre  string `gorm:"column:deal_genre;type:varchar(100)" json:"deal_genre"`
	DealLabel  string `gorm:"column:deal_label;type:varchar(255)" json:"deal_label"`

	DealPrimaryWriter string `gorm:"column:deal_primary_writer;type:varchar(255);not null" json:"deal_primary_writer"`
	DealCoWriters     string `gorm:"column:deal_co_writers;type:text" json:"deal_co_writers"`

	DealPerformanceStatus string `gorm:"column:deal_performance_status;type:varchar(20);not null;default:'collecting'" json:"deal_performance_status"`
	DealMechanicalStatus  string `gorm:"column:deal_mechanical_status;type:varchar(20);not null;default:'collecting'" json:"deal_mechanical_status"`

	// Snapshot of the credit splits at approval time.
	DealSplits datatypes.JSON `gorm:"column:deal_splits;type:jsonb" json:"deal_splits,omitempty"`

	DealCreatedBy uuid.UUID `gorm:"column:deal_created_by;type:uuid;not null" json:"deal_created_by"`
	DealNotes     string    `gorm:"column:deal_notes;type:text" json:"deal_notes"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Deal) TableName() string {
	return "deals"
}
