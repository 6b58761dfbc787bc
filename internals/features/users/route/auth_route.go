package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "placementtrack_backend/internals/features/users/controller"
	"placementtrack_backend/internals/middlewares"
)

// AuthRoutes registers the public auth endpoints
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := userController.NewAuthController(db)

	api.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
}
