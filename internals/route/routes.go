// file: internals/route/routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dealRoute "placementtrack_backend/internals/features/deals/route"
	notifService "placementtrack_backend/internals/features/notifications/service"
	placementRoute "placementtrack_backend/internals/features/placements/route"
	placementService "placementtrack_backend/internals/features/placements/service"
	usersRoute "placementtrack_backend/internals/features/users/route"
	usersService "placementtrack_backend/internals/features/users/service"

	"placementtrack_backend/internals/constants"
	authMiddleware "placementtrack_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Explicit wiring of the workflow collaborators; no package-level
	// singletons.
	directory := usersService.NewAccountDirectory()
	notifier := notifService.NewSMTPNotifier(db)
	workflow := placementService.NewWorkflowService(db, directory, notifier)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	usersRoute.AuthRoutes(app.Group("/api/auth"), db)

	// ===================== PRIVATE (CREATOR) =====================
	log.Println("[INFO] Setting up creator group...")
	userGroup := app.Group("/api/u", authMiddleware.AuthMiddleware())
	placementRoute.SubmissionUserRoutes(userGroup.Group("/submissions"), db, workflow)

	// ===================== PRIVATE (ADMIN) =====================
	log.Println("[INFO] Setting up admin group...")
	adminGroup := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("placement review"), constants.AdminOnly...),
	)
	placementRoute.SubmissionAdminRoutes(adminGroup.Group("/submissions"), db, workflow)
	dealRoute.DealAdminRoutes(adminGroup.Group("/deals"), db)
}
