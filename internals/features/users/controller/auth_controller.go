// 📁 controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"placementtrack_backend/internals/configs"
	"placementtrack_backend/internals/constants"
	"placementtrack_backend/internals/features/users/dto"
	"placementtrack_backend/internals/features/users/model"
	helper "placementtrack_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.User{
		UserName:           req.UserName,
		UserEmail:          email,
		UserPassword:       string(hashed),
		UserRole:           constants.RoleCreator,
		UserIsActive:       true,
		UserProAffiliation: req.ProAffiliation,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			// unique index on user_email; duplicate registration races
			// settle here instead of a racy pre-count
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Email already registered")
			}
			return err
		}
		profile := model.UserProfile{
			ProfileUserID:         user.UserID,
			ProfileFirstName:      req.FirstName,
			ProfileLastName:       req.LastName,
			ProfileProAffiliation: req.ProAffiliation,
			ProfileIPINumber:      req.IPINumber,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Printf("[ERROR] register failed: %v", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Account registered", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"role":      user.UserRole,
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.User
	if err := ctrl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up account")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        user.UserID.String(),
		"role":      user.UserRole,
		"user_name": user.UserName,
		"email":     user.UserEmail,
		"exp":       expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] token sign failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login success", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		Role:        user.UserRole,
	})
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
