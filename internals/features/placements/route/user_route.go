package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placementController "placementtrack_backend/internals/features/placements/controller"
	"placementtrack_backend/internals/features/placements/service"
)

// SubmissionUserRoutes: creator-facing submission endpoints (user group)
func SubmissionUserRoutes(api fiber.Router, db *gorm.DB, workflow *service.WorkflowService) {
	ctrl := placementController.NewSubmissionUserController(db, workflow)

	api.Post("/", ctrl.Create)
	api.Get("/mine", ctrl.ListMine)
	api.Put("/:id/edit", ctrl.Edit)
	api.Post("/:id/resubmit", ctrl.Resubmit)
}
