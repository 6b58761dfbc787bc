package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dealController "placementtrack_backend/internals/features/deals/controller"
)

// DealAdminRoutes: read-only deal endpoints (admin group)
func DealAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := dealController.NewDealController(db)

	api.Get("/", ctrl.List)
	api.Get("/:id", ctrl.GetByID)
}
