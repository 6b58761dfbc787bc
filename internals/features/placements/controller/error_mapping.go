// file: internals/features/placements/controller/error_mapping.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"placementtrack_backend/internals/features/placements/service"
	helper "placementtrack_backend/internals/helpers"
)

// mapWorkflowError turns typed service errors into the JSON error
// shape. Every message says whether a mutation occurred, because a
// caller deciding whether to retry needs to know.
func mapWorkflowError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrSubmissionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}
	if errors.Is(err, service.ErrNotOwner) {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only act on your own submissions")
	}

	var stateErr *service.StateConflictError
	if errors.As(err, &stateErr) {
		return helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("%s; nothing was changed", stateErr.Error()))
	}

	var splitErr *service.SplitTotalError
	if errors.As(err, &splitErr) {
		return helper.JsonValidationError(c, map[string][]string{
			"credits": {splitErr.Error()},
		})
	}

	var primaryErr *service.MultiplePrimaryError
	if errors.As(err, &primaryErr) {
		return helper.JsonValidationError(c, map[string][]string{
			"credits": {primaryErr.Error()},
		})
	}

	var reqErr *service.RequiredFieldError
	if errors.As(err, &reqErr) {
		return helper.JsonValidationError(c, map[string][]string{
			reqErr.Field: {"required"},
		})
	}

	// The one partially-completed case: status committed, deal insert
	// failed. The distinct code tells callers NOT to re-approve.
	var dealErr *service.DealCreationError
	if errors.As(err, &dealErr) {
		return helper.JsonErrorWithCode(c, fiber.StatusInternalServerError,
			"DEAL_CREATION_FAILED",
			fmt.Sprintf("submission is APPROVED as %s but the deal record could not be created; do not retry the approval, contact support for reconciliation", dealErr.CaseNumber))
	}

	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal error")
}
