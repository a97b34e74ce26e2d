package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/timezone"
)

type OrganizationHandler struct {
	db *gorm.DB
}

func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{db: db}
}

type UpdateOrganizationRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

func (h *OrganizationHandler) GetMeOrganization(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var org models.Organization
	if err := h.db.First(&org, organizationID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "organization_not_found"})
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) UpdateMeOrganization(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var org models.Organization
	if err := h.db.First(&org, organizationID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "organization_not_found"})
		return
	}

	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}
	if req.Address != nil {
		org.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		org.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_min_advance"})
			return
		}
		org.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&org).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_organization"})
		return
	}

	c.JSON(http.StatusOK, org)
}
