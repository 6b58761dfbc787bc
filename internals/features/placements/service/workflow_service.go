// file: internals/features/placements/service/workflow_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dealModel "placementtrack_backend/internals/features/deals/model"
	dealService "placementtrack_backend/internals/features/deals/service"
	notifService "placementtrack_backend/internals/features/notifications/service"
	"placementtrack_backend/internals/features/placements/dto"
	"placementtrack_backend/internals/features/placements/model"
	userModel "placementtrack_backend/internals/features/users/model"
	userService "placementtrack_backend/internals/features/users/service"
)

// Actor identifies who is driving a transition. Admins may edit in any
// state; creators only their own submissions while still reviewable.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// WorkflowService owns the submission lifecycle. All collaborators are
// injected so tests can substitute doubles; there is no package-level
// client state.
type WorkflowService struct {
	DB       *gorm.DB
	Resolver *CreditResolver
	Notifier notifService.Notifier

	// now is swappable for tests that pin the approval year.
	now func() time.Time
}

func NewWorkflowService(db *gorm.DB, directory userService.AccountDirectory, notifier notifService.Notifier) *WorkflowService {
	return &WorkflowService{
		DB:       db,
		Resolver: NewCreditResolver(directory),
		Notifier: notifier,
		now:      time.Now,
	}
}

// ApproveResult carries everything the caller needs after an approval.
type ApproveResult struct {
	Submission    *model.PlacementSubmission
	CaseNumber    string
	Deal          *dealModel.Deal
	LinkedCredits int
}

/* ===============================
   Approve
=================================*/

// Approve runs the full approval transition: guard, credit resolution,
// case number allocation, and the status write happen in one
// transaction; deal creation is synchronous but outside it; the
// notification is fire-and-forget after everything durable.
func (s *WorkflowService) Approve(ctx context.Context, submissionID, reviewerID uuid.UUID, notes string) (*ApproveResult, error) {
	var (
		sub     model.PlacementSubmission
		credits []model.PlacementCredit
		linked  int
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSubmission(tx, submissionID, &sub); err != nil {
			return err
		}
		if !sub.SubmissionStatus.IsReviewable() {
			return &StateConflictError{Action: "approve", Current: sub.SubmissionStatus}
		}

		if err := tx.Where("credit_submission_id = ?", submissionID).
			Order("credit_is_primary DESC, created_at ASC").
			Find(&credits).Error; err != nil {
			return err
		}

		n, err := s.Resolver.ResolveCredits(tx, credits)
		if err != nil {
			return err
		}
		linked = n

		caseNumber, err := AllocateCaseNumber(tx, s.now().Year())
		if err != nil {
			return err
		}

		now := s.now()
		sub.SubmissionStatus = model.StatusApproved
		sub.SubmissionCaseNumber = &caseNumber
		sub.SubmissionReviewedBy = &reviewerID
		sub.SubmissionReviewedAt = &now
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	result := &ApproveResult{
		Submission:    &sub,
		CaseNumber:    *sub.SubmissionCaseNumber,
		LinkedCredits: linked,
	}

	// Deal creation is deliberately outside the approval transaction:
	// the approval is durable at this point, and a deal failure is a
	// reported inconsistency, not a rollback.
	owner, ownerErr := s.loadOwner(ctx, sub.SubmissionUserID)
	ownerName := sub.SubmissionArtist
	if ownerErr == nil && owner.UserName != "" {
		ownerName = owner.UserName
	}

	deal, err := dealService.BuildDeal(&sub, credits, ownerName, reviewerID, notes)
	if err == nil {
		err = s.DB.WithContext(ctx).Create(deal).Error
	}
	if err != nil {
		log.Printf("[RECONCILE] submission=%s case=%s approved but deal creation failed: %v",
			sub.SubmissionID, result.CaseNumber, err)
		return result, &DealCreationError{
			SubmissionID: sub.SubmissionID,
			CaseNumber:   result.CaseNumber,
			Err:          err,
		}
	}
	result.Deal = deal

	if ownerErr == nil {
		s.Notifier.Notify(notifService.KindPlacementApproved, owner.UserEmail, map[string]any{
			"title":       sub.SubmissionTitle,
			"case_number": result.CaseNumber,
		})
	} else {
		log.Printf("[NOTIFY] owner lookup failed for submission %s: %v", sub.SubmissionID, ownerErr)
	}

	return result, nil
}

/* ===============================
   Deny
=================================*/

func (s *WorkflowService) Deny(ctx context.Context, submissionID, reviewerID uuid.UUID, reason string) (*model.PlacementSubmission, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &RequiredFieldError{Field: "denial_reason"}
	}

	var sub model.PlacementSubmission
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSubmission(tx, submissionID, &sub); err != nil {
			return err
		}
		if !sub.SubmissionStatus.IsReviewable() {
			return &StateConflictError{Action: "deny", Current: sub.SubmissionStatus}
		}

		now := s.now()
		sub.SubmissionStatus = model.StatusDenied
		sub.SubmissionDenialReason = reason
		sub.SubmissionReviewedBy = &reviewerID
		sub.SubmissionReviewedAt = &now
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	if owner, err := s.loadOwner(ctx, sub.SubmissionUserID); err == nil {
		s.Notifier.Notify(notifService.KindPlacementDenied, owner.UserEmail, map[string]any{
			"title":  sub.SubmissionTitle,
			"reason": reason,
		})
	}

	return &sub, nil
}

/* ===============================
   Request documents
=================================*/

func (s *WorkflowService) RequestDocuments(ctx context.Context, submissionID, reviewerID uuid.UUID, text string) (*model.PlacementSubmission, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &RequiredFieldError{Field: "documents_requested"}
	}

	var sub model.PlacementSubmission
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSubmission(tx, submissionID, &sub); err != nil {
			return err
		}
		if sub.SubmissionStatus != model.StatusPending {
			return &StateConflictError{Action: "request documents for", Current: sub.SubmissionStatus}
		}

		sub.SubmissionStatus = model.StatusDocumentsRequested
		sub.SubmissionDocumentsRequested = text
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	if owner, err := s.loadOwner(ctx, sub.SubmissionUserID); err == nil {
		s.Notifier.Notify(notifService.KindDocumentsRequested, owner.UserEmail, map[string]any{
			"title":     sub.SubmissionTitle,
			"requested": text,
		})
	}

	return &sub, nil
}

/* ===============================
   Edit (replace-set credit semantics)
=================================*/

// Edit applies field updates and, when credits are supplied, replaces
// the whole credit set after the split validator accepts it. The old
// set is deleted and the new one inserted in the same transaction, so
// no reader ever sees a partially replaced set.
func (s *WorkflowService) Edit(ctx context.Context, submissionID uuid.UUID, actor Actor, req *dto.EditSubmissionRequest) (*model.PlacementSubmission, error) {
	if req.Credits != nil {
		splits := make([]float64, len(req.Credits))
		primaries := 0
		for i, cr := range req.Credits {
			splits[i] = cr.SplitPercent
			if cr.IsPrimary {
				primaries++
			}
		}
		if err := ValidateSplitTotal(splits); err != nil {
			return nil, err
		}
		if primaries > 1 {
			return nil, &MultiplePrimaryError{Count: primaries}
		}
	}

	var sub model.PlacementSubmission
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSubmission(tx, submissionID, &sub); err != nil {
			return err
		}

		if !actor.IsAdmin {
			if sub.SubmissionUserID != actor.UserID {
				return ErrNotOwner
			}
			if !sub.SubmissionStatus.IsCreatorEditable() {
				return &StateConflictError{Action: "edit", Current: sub.SubmissionStatus}
			}
		}

		applyFieldUpdates(&sub, req)
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		if req.Credits != nil {
			if err := tx.Where("credit_submission_id = ?", submissionID).
				Delete(&model.PlacementCredit{}).Error; err != nil {
				return err
			}
			rows := buildCreditRows(submissionID, req.Credits)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
			sub.Credits = rows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func applyFieldUpdates(sub *model.PlacementSubmission, req *dto.EditSubmissionRequest) {
	if req.Title != nil {
		sub.SubmissionTitle = *req.Title
	}
	if req.Artist != nil {
		sub.SubmissionArtist = *req.Artist
	}
	if req.Album != nil {
		sub.SubmissionAlbum = *req.Album
	}
	if req.ISRC != nil {
		sub.SubmissionISRC = *req.ISRC
	}
	if req.Genre != nil {
		sub.SubmissionGenre = *req.Genre
	}
	if req.ReleaseYear != nil {
		sub.SubmissionReleaseYear = req.ReleaseYear
	}
	if req.Label != nil {
		sub.SubmissionLabel = *req.Label
	}
	if req.Notes != nil {
		sub.SubmissionNotes = *req.Notes
	}
}

func buildCreditRows(submissionID uuid.UUID, inputs []dto.CreditInput) []model.PlacementCredit {
	rows := make([]model.PlacementCredit, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, model.PlacementCredit{
			CreditSubmissionID:   submissionID,
			CreditFirstName:      strings.TrimSpace(in.FirstName),
			CreditLastName:       strings.TrimSpace(in.LastName),
			CreditRole:           strings.TrimSpace(in.Role),
			CreditSplitPercent:   in.SplitPercent,
			CreditProAffiliation: strings.TrimSpace(in.ProAffiliation),
			CreditIPINumber:      strings.TrimSpace(in.IPINumber),
			CreditIsExternal:     true,
			CreditIsPrimary:      in.IsPrimary,
		})
	}
	return rows
}

/* ===============================
   Resubmit
=================================*/

// Resubmit returns a DOCUMENTS_REQUESTED submission to the review
// queue: request text cleared, submission timestamp refreshed. The
// case number (always null here) is untouched.
func (s *WorkflowService) Resubmit(ctx context.Context, submissionID, ownerID uuid.UUID, notes string) (*model.PlacementSubmission, error) {
	var sub model.PlacementSubmission
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSubmission(tx, submissionID, &sub); err != nil {
			return err
		}
		if sub.SubmissionUserID != ownerID {
			return ErrNotOwner
		}
		if sub.SubmissionStatus != model.StatusDocumentsRequested {
			return &StateConflictError{Action: "resubmit", Current: sub.SubmissionStatus}
		}

		sub.SubmissionStatus = model.StatusPending
		sub.SubmissionDocumentsRequested = ""
		sub.SubmissionSubmittedAt = s.now()
		if strings.TrimSpace(notes) != "" {
			sub.SubmissionNotes = strings.TrimSpace(notes)
		}
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	if owner, err := s.loadOwner(ctx, sub.SubmissionUserID); err == nil {
		s.Notifier.Notify(notifService.KindPlacementResubmitted, owner.UserEmail, map[string]any{
			"title": sub.SubmissionTitle,
		})
	}

	return &sub, nil
}

/* ===============================
   Shared bits
=================================*/

// lockSubmission reads the submission FOR UPDATE so the guard check
// and the state write happen against the same row version. The loser
// of a simultaneous edit/approve race blocks here and then fails its
// guard instead of silently overwriting.
func lockSubmission(tx *gorm.DB, submissionID uuid.UUID, sub *model.PlacementSubmission) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("submission_id = ?", submissionID).
		First(sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubmissionNotFound
	}
	return err
}

func (s *WorkflowService) loadOwner(ctx context.Context, userID uuid.UUID) (*userModel.User, error) {
	var owner userModel.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}
