// 📁 controller/submission_user_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"placementtrack_backend/internals/features/placements/dto"
	"placementtrack_backend/internals/features/placements/model"
	"placementtrack_backend/internals/features/placements/service"
	helper "placementtrack_backend/internals/helpers"
)

type SubmissionUserController struct {
	DB       *gorm.DB
	Workflow *service.WorkflowService
}

func NewSubmissionUserController(db *gorm.DB, workflow *service.WorkflowService) *SubmissionUserController {
	return &SubmissionUserController{DB: db, Workflow: workflow}
}

// POST /api/u/submissions — register a new placement (starts PENDING)
func (ctrl *SubmissionUserController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	// same invariant as edit: the credit set must sum to 100 up front
	splits := make([]float64, len(req.Credits))
	primaries := 0
	for i, cr := range req.Credits {
		splits[i] = cr.SplitPercent
		if cr.IsPrimary {
			primaries++
		}
	}
	if err := service.ValidateSplitTotal(splits); err != nil {
		return mapWorkflowError(c, err)
	}
	if primaries > 1 {
		return mapWorkflowError(c, &service.MultiplePrimaryError{Count: primaries})
	}

	sub := model.PlacementSubmission{
		SubmissionUserID:      userID,
		SubmissionTitle:       strings.TrimSpace(req.Title),
		SubmissionArtist:      strings.TrimSpace(req.Artist),
		SubmissionAlbum:       strings.TrimSpace(req.Album),
		SubmissionISRC:        strings.TrimSpace(req.ISRC),
		SubmissionGenre:       strings.TrimSpace(req.Genre),
		SubmissionReleaseYear: req.ReleaseYear,
		SubmissionLabel:       strings.TrimSpace(req.Label),
		SubmissionNotes:       req.Notes,
		SubmissionStatus:      model.StatusPending,
		SubmissionSubmittedAt: time.Now(),
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		rows := make([]model.PlacementCredit, 0, len(req.Credits))
		for _, in := range req.Credits {
			rows = append(rows, model.PlacementCredit{
				CreditSubmissionID:   sub.SubmissionID,
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
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		sub.Credits = rows
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create submission")
	}

	return helper.JsonCreated(c, "Placement submitted for review", sub)
}

// GET /api/u/submissions/mine — caller's own submissions with credits + documents
func (ctrl *SubmissionUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PlacementSubmission{}).
		Where("submission_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var subs []model.PlacementSubmission
	if err := q.Preload("Credits").Preload("Documents").
		Order("submission_submitted_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submissions")
	}

	return helper.JsonList(c, "Your submissions", subs,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/u/submissions/:id/edit — own submissions, editable states only
func (ctrl *SubmissionUserController) Edit(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	userID, err := helper.GetUserIDFromToken(c)
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

	sub, err := ctrl.Workflow.Edit(c.UserContext(), id, service.Actor{UserID: userID, IsAdmin: false}, &req)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return helper.JsonUpdated(c, "Submission updated", sub)
}

// POST /api/u/submissions/:id/resubmit — owner only, DOCUMENTS_REQUESTED only
func (ctrl *SubmissionUserController) Resubmit(c *fiber.Ctx) error {
	id, err := parseSubmissionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ResubmitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	sub, err := ctrl.Workflow.Resubmit(c.UserContext(), id, userID, req.Notes)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return helper.JsonOK(c, "Submission resubmitted for review", sub)
}
