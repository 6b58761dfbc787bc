// file: internals/features/placements/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"placementtrack_backend/internals/features/placements/model"
)

var (
	// ErrSubmissionNotFound: the referenced submission does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNotOwner: a creator acted on somebody else's submission.
	ErrNotOwner = errors.New("submission belongs to another creator")
)

// StateConflictError: the action is illegal in the submission's current
// state. Nothing was mutated.
type StateConflictError struct {
	Action  string
	Current model.SubmissionStatus
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s a submission in state %s", e.Action, e.Current)
}

// RequiredFieldError: a transition was invoked without a field it
// requires (denial reason, requested-documents text). Nothing was
// mutated.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// MultiplePrimaryError: a replacement credit set flagged more than one
// credit as primary.
type MultiplePrimaryError struct {
	Count int
}

func (e *MultiplePrimaryError) Error() string {
	return fmt.Sprintf("at most one credit may be primary, got %d", e.Count)
}

// DealCreationError: the status transition to APPROVED committed but
// the downstream deal insert failed. The submission IS approved and
// holds its case number; callers must not retry the approval. Logged
// for manual reconciliation.
type DealCreationError struct {
	SubmissionID uuid.UUID
	CaseNumber   string
	Err          error
}

func (e *DealCreationError) Error() string {
	return fmt.Sprintf("submission %s approved as %s but deal creation failed: %v",
		e.SubmissionID, e.CaseNumber, e.Err)
}

func (e *DealCreationError) Unwrap() error {
	return e.Err
}
