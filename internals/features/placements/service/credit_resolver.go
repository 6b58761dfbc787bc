// file: internals/features/placements/service/credit_resolver.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placementtrack_backend/internals/features/placements/model"
	userService "placementtrack_backend/internals/features/users/service"
)

// CreditResolver links unlinked collaborator credits to known platform
// accounts by name. A miss or an ambiguous name is not an error: the
// credit stays flagged external for manual linking later.
type CreditResolver struct {
	Directory userService.AccountDirectory
}

func NewCreditResolver(directory userService.AccountDirectory) *CreditResolver {
	return &CreditResolver{Directory: directory}
}

// ResolveCredits runs over the submission's credits inside the approval
// transaction, linking what it can. Returns the number of credits
// linked. Splits, role, and name fields are never touched.
func (r *CreditResolver) ResolveCredits(tx *gorm.DB, credits []model.PlacementCredit) (int, error) {
	linked := 0
	for i := range credits {
		cr := &credits[i]
		if cr.IsLinked() {
			continue
		}

		acct, err := r.Directory.FindCreatorByName(tx, cr.CreditFirstName, cr.CreditLastName)
		if err != nil {
			if errors.Is(err, userService.ErrAmbiguousMatch) {
				log.Printf("[RESOLVER] ambiguous match for credit %s (%s), leaving unlinked",
					cr.CreditID, cr.FullName())
				continue
			}
			return linked, err
		}
		if acct == nil {
			continue
		}

		ApplyDirectoryMatch(cr, acct)
		if err := tx.Save(cr).Error; err != nil {
			return linked, err
		}
		linked++
	}
	return linked, nil
}

// ApplyDirectoryMatch links a credit to the matched account and
// backfills identifying fields. Only empty fields are filled; values
// the creator already typed in are never overwritten. The affiliation
// prefers the account's own declared value and falls back to the
// profile's.
func ApplyDirectoryMatch(cr *model.PlacementCredit, acct *userService.DirectoryAccount) {
	id, err := uuid.Parse(acct.UserID)
	if err != nil || id == uuid.Nil {
		return
	}
	cr.CreditUserID = &id
	cr.CreditIsExternal = false

	if cr.CreditProAffiliation == "" {
		if acct.ProAffiliation != "" {
			cr.CreditProAffiliation = acct.ProAffiliation
		} else {
			cr.CreditProAffiliation = acct.ProfilePro
		}
	}
	if cr.CreditIPINumber == "" {
		cr.CreditIPINumber = acct.IPINumber
	}
}
