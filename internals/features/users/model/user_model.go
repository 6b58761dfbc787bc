package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;type:varchar(255);not null;unique" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'creator'" json:"user_role"` // admin | creator
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// Declared royalty-society data on the account itself; the profile
	// carries the fallback values used by credit resolution.
	UserProAffiliation string `gorm:"column:user_pro_affiliation;type:varchar(50)" json:"user_pro_affiliation"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

type UserProfile struct {
	ProfileID     uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	ProfileUserID uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;uniqueIndex" json:"profile_user_id"`

	ProfileFirstName string `gorm:"column:profile_first_name;type:varchar(100)" json:"profile_first_name"`
	ProfileLastName  string `gorm:"column:profile_last_name;type:varchar(100)" json:"profile_last_name"`

	ProfileProAffiliation string `gorm:"column:profile_pro_affiliation;type:varchar(50)" json:"profile_pro_affiliation"` // ASCAP, BMI, SESAC, ...
	ProfileIPINumber      string `gorm:"column:profile_ipi_number;type:varchar(30)" json:"profile_ipi_number"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
