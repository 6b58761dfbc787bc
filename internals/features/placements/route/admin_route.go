package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placementController "placementtrack_backend/internals/features/placements/controller"
	"placementtrack_backend/internals/features/placements/service"
)

// SubmissionAdminRoutes: review queue + workflow transitions (admin group)
func SubmissionAdminRoutes(api fiber.Router, db *gorm.DB, workflow *service.WorkflowService) {
	ctrl := placementController.NewSubmissionAdminController(db, workflow)

	api.Get("/pending", ctrl.ListPending)
	api.Get("/approved", ctrl.ListApproved)
	api.Get("/:id", ctrl.GetByID)

	api.Post("/:id/approve", ctrl.Approve)
	api.Post("/:id/deny", ctrl.Deny)
	api.Post("/:id/request-documents", ctrl.RequestDocuments)
	api.Put("/:id/edit", ctrl.Edit)
}
