package model

import (
	"time"

	"github.com/google/uuid"
)

type PlacementCredit struct {
	CreditID           uuid.UUID `gorm:"column:credit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"credit_id"`
	CreditSubmissionID uuid.UUID `gorm:"column:credit_submission_id;type:uuid;not null;index" json:"credit_submission_id"`

	CreditFirstName string `gorm:"column:credit_first_name;type:varchar(100);not null" json:"credit_first_name"`
	CreditLastName  string `gorm:"column:credit_last_name;type:varchar(100);not null" json:"credit_last_name"`
	CreditRole      string `gorm:"column:credit_role;type:varchar(50);not null" json:"credit_role"` // writer, producer, ...

	CreditSplitPercent float64 `gorm:"column:credit_split_percent;type:numeric(5,2);not null" json:"credit_split_percent"`

	CreditProAffiliation string `gorm:"column:credit_pro_affiliation;type:varchar(50)" json:"credit_pro_affiliation"`
	CreditIPINumber      string `gorm:"column:credit_ipi_number;type:varchar(30)" json:"credit_ipi_number"`

	// Link to a known platform account, filled by the resolver at approval.
	CreditUserID *uuid.UUID `gorm:"column:credit_user_id;type:uuid" json:"credit_user_id,omitempty"`

	CreditIsExternal bool `gorm:"column:credit_is_external;not null;default:true" json:"credit_is_external"`
	CreditIsPrimary  bool `gorm:"column:credit_is_primary;not null;default:false" json:"credit_is_primary"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PlacementCredit) TableName() string {
	return "placement_credits"
}

// IsLinked reports whether this credit is tied to a platform account.
func (cr *PlacementCredit) IsLinked() bool {
	return cr.CreditUserID != nil && *cr.CreditUserID != uuid.Nil
}

// FullName joins first/last for directory lookups and deal notes.
func (cr *PlacementCredit) FullName() string {
	if cr.CreditFirstName == "" {
		return cr.CreditLastName
	}
	if cr.CreditLastName == "" {
		return cr.CreditFirstName
	}
	return cr.CreditFirstName + " " + cr.CreditLastName
}
