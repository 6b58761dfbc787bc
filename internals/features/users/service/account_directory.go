// file: internals/features/users/service/account_directory.go
package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"placementtrack_backend/internals/constants"
	"placementtrack_backend/internals/features/users/model"
)

// ErrAmbiguousMatch: more than one creator account shares the name.
// Callers treat this the same as a miss (the credit stays unlinked),
// but the two cases are distinguished for logging.
var ErrAmbiguousMatch = errors.New("ambiguous account match")

// DirectoryAccount is the resolved view handed to the credit resolver:
// the account plus the profile fields used for backfill.
type DirectoryAccount struct {
	UserID         string
	UserName       string
	Email          string
	ProAffiliation string // account-level value, preferred
	ProfilePro     string // profile fallback
	IPINumber      string
}

// AccountDirectory looks creator accounts up by collaborator name.
type AccountDirectory interface {
	FindCreatorByName(tx *gorm.DB, firstName, lastName string) (*DirectoryAccount, error)
}

type GormAccountDirectory struct{}

func NewAccountDirectory() *GormAccountDirectory {
	return &GormAccountDirectory{}
}

// FindCreatorByName matches case-insensitively on first AND last name
// against active creator accounts. Returns (nil, nil) on a miss and
// (nil, ErrAmbiguousMatch) when several accounts share the name.
// The role comparison is case-insensitive as well; role values have
// drifted in casing before and a resolver that silently never matches
// is worse than a lenient compare.
func (d *GormAccountDirectory) FindCreatorByName(tx *gorm.DB, firstName, lastName string) (*DirectoryAccount, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return nil, nil
	}

	type row struct {
		UserID                string
		UserName              string
		UserEmail             string
		UserProAffiliation    string
		ProfileProAffiliation string
		ProfileIPINumber      string
	}

	var rows []row
	err := tx.Model(&model.User{}).
		Select(`users.user_id, users.user_name, users.user_email, users.user_pro_affiliation,
			user_profiles.profile_pro_affiliation, user_profiles.profile_ipi_number`).
		Joins("JOIN user_profiles ON user_profiles.profile_user_id = users.user_id").
		Where("LOWER(users.user_role) = ?", constants.RoleCreator).
		Where("users.user_is_active = TRUE").
		Where("LOWER(user_profiles.profile_first_name) = LOWER(?)", first).
		Where("LOWER(user_profiles.profile_last_name) = LOWER(?)", last).
		Limit(2).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		r := rows[0]
		return &DirectoryAccount{
			UserID:         r.UserID,
			UserName:       r.UserName,
			Email:          r.UserEmail,
			ProAffiliation: r.UserProAffiliation,
			ProfilePro:     r.ProfileProAffiliation,
			IPINumber:      r.ProfileIPINumber,
		}, nil
	default:
		return nil, ErrAmbiguousMatch
	}
}
