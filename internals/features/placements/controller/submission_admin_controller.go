// 📁 controller/submission_admin_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"placementtrack_backend/internals/features/placements/dto"
	"placementtrack_backend/internals/features/placements/model"
	"placementtrack_backend/internals/features/placements/service"
	helper "placementtrack_backend/internals/helpers"
)

type SubmissionAdminController struct {
	DB       *gorm.DB
	Workflow *service.WorkflowService
}

func NewSubmissionAdminController(db *gorm.DB, workflow *service.WorkflowService) *SubmissionAdminController {
	return &SubmissionAdminController{DB: db, Workflow: workflow}
}

// GET /api/a/submissions/pending — review queue (PENDING + DOCUMENTS_REQUESTED)
func (ctrl *SubmissionAdminController) ListPending(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PlacementSubmission{}).
		Where("submission_status IN ?", []model.SubmissionStatus{
			model.StatusPending, model.StatusDocumentsRequested,
		})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var subs []model.PlacementSubmission
	if err := q.Preload("Credits").Preload("Documents").
		Order("submission_submitted_at asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submissions")
	}

	return helper.JsonList(c, "Pending submissions", subs,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/submissions/approved
func (ctrl *SubmissionAdminController) ListApproved(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PlacementSubmission{}).
		Where("submission_status = ?", model.StatusApproved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var subs []model.PlacementSubmission
	if err := q.Preload("Credits").
		Order("submission_reviewed_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submissions")
	}

	return helper.JsonList(c, "Approved submissions", subs,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/submissions/:id
func (ctrl *SubmissionAdminController) GetByID(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var sub model.PlacementSubmission
	if err := ctrl.DB.Preload("Credits").Preload("Documents").
		Where("submission_id = ?", id).
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submission")
	}

	return helper.JsonOK(c, "", sub)
}

// POST /api/a/submissions/:id/approve
func (ctrl *SubmissionAdminController) Approve(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ApproveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	result, err := ctrl.Workflow.Approve(c.UserContext(), id, reviewerID, req.Notes)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	log.Printf("[WORKFLOW] submission=%s approved as %s by %s (linked %d credits)",
		id, result.CaseNumber, reviewerID, result.LinkedCredits)

	return helper.JsonOK(c, "Submission approved", fiber.Map{
		"case_number":    result.CaseNumber,
		"submission":     result.Submission,
		"deal_id":        result.Deal.DealID,
		"linked_credits": result.LinkedCredits,
	})
}

// POST /api/a/submissions/:id/deny
func (ctrl *SubmissionAdminController) Deny(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.DenyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sub, err := ctrl.Workflow.Deny(c.UserContext(), id, reviewerID, req.DenialReason)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return helper.JsonOK(c, "Submission denied", sub)
}

// POST /api/a/submissions/:id/request-documents
func (ctrl *SubmissionAdminController) RequestDocuments(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RequestDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sub, err := ctrl.Workflow.RequestDocuments(c.UserContext(), id, reviewerID, req.DocumentsRequested)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return helper.JsonOK(c, "Documents requested", sub)
}

// PUT /api/a/submissions/:id/edit — admins may edit in any state
func (ctrl *SubmissionAdminController) Edit(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EditSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	sub, err := ctrl.Workflow.Edit(c.UserContext(), id, service.Actor{UserID: adminID, IsAdmin: true}, &req)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return helper.JsonUpdated(c, "Submission updated", sub)
}

func parseSubmissionID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("invalid submission id")
	}
	return id, nil
}

func validationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
