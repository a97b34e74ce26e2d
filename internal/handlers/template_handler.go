package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
	uccontract "github.com/ThriveAssessments/case-manager/internal/usecase/contract"
)

// ======================================================
// HANDLER
// ======================================================

type TemplateHandler struct {
	db             *gorm.DB
	requirementsUC *uccontract.ListCompatibleFeeStructures
}

func NewTemplateHandler(
	db *gorm.DB,
	requirementsUC *uccontract.ListCompatibleFeeStructures,
) *TemplateHandler {
	return &TemplateHandler{
		db:             db,
		requirementsUC: requirementsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTemplateRequest struct {
	Name                  string `json:"name" binding:"required"`
	HTMLContent           string `json:"html_content" binding:"required"`
	DefaultFeeStructureID *uint  `json:"default_fee_structure_id"`
}

type UpdateTemplateRequest struct {
	Name                  *string `json:"name,omitempty"`
	HTMLContent           *string `json:"html_content,omitempty"`
	DefaultFeeStructureID *uint   `json:"default_fee_structure_id,omitempty"`
	Active                *bool   `json:"active,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *TemplateHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var templates []models.ContractTemplate
	if err := h.db.
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&templates).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_templates"})
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tpl := models.ContractTemplate{
		OrganizationID:        organizationID,
		Name:                  req.Name,
		HTMLContent:           req.HTMLContent,
		DefaultFeeStructureID: req.DefaultFeeStructureID,
		Active:                true,
	}

	if err := h.db.Create(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_template"})
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id := c.Param("id")

	var tpl models.ContractTemplate
	if err := h.db.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&tpl).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_template"})
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		tpl.Name = *req.Name
	}
	if req.HTMLContent != nil {
		tpl.HTMLContent = *req.HTMLContent
	}
	if req.DefaultFeeStructureID != nil {
		tpl.DefaultFeeStructureID = req.DefaultFeeStructureID
	}
	if req.Active != nil {
		tpl.Active = *req.Active
	}

	if err := h.db.Save(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_template"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// Placeholders answers what a template's content references without touching
// any fee structure.
func (h *TemplateHandler) Placeholders(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id := c.Param("id")

	var tpl models.ContractTemplate
	if err := h.db.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&tpl).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"placeholders":  domain.ParsePlaceholders(tpl.HTMLContent).Keys(),
		"fee_variables": domain.ExtractRequiredFeeVariables(tpl.HTMLContent).Keys(),
	})
}

// Requirements computes everything the contract-creation form needs: required
// variables and the fee structures compatible with the template.
func (h *TemplateHandler) Requirements(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_template_id", "Invalid template id.")
		return
	}

	reqs, err := h.requirementsUC.Execute(c.Request.Context(), organizationID, uint(id))
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.NotFound(c, code, "Template not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_requirements", "Could not compute template requirements.")
		return
	}

	c.JSON(http.StatusOK, reqs)
}
