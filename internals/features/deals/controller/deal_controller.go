// 📁 controller/deal_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"placementtrack_backend/internals/features/deals/model"
	helper "placementtrack_backend/internals/helpers"
)

// Deals are append-only: created by the approval workflow, read here.
type DealController struct {
	DB *gorm.DB
}

func NewDealController(db *gorm.DB) *DealController {
	return &DealController{DB: db}
}

// GET /api/a/deals
func (ctrl *DealController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Deal{})
	if caseNumber := strings.TrimSpace(c.Query("case_number")); caseNumber != "" {
		q = q.Where("deal_case_number = ?", caseNumber)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count deals")
	}

	var deals []model.Deal
	if err := q.Order("created_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&deals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load deals")
	}

	return helper.JsonList(c, "Deals", deals,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/deals/:id
func (ctrl *DealController) GetByID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid deal id")
	}

	var deal model.Deal
	if err := ctrl.DB.Where("deal_id = ?", id).First(&deal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Deal not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load deal")
	}

	return helper.JsonOK(c, "", deal)
}
