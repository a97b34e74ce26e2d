package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type ProviderHandler struct {
	db *gorm.DB
}

func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{db: db}
}

// --------- Requests ---------

type CreateProviderRequest struct {
	Type  string `json:"type" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Languages    []string `json:"languages"`
	VehicleType  string   `json:"vehicle_type"`
	Specialty    string   `json:"specialty"`
	ServiceAreas []string `json:"service_areas"`
}

type UpdateProviderRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`

	Languages    *[]string `json:"languages,omitempty"`
	VehicleType  *string   `json:"vehicle_type,omitempty"`
	Specialty    *string   `json:"specialty,omitempty"`
	ServiceAreas *[]string `json:"service_areas,omitempty"`

	Active *bool `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProviderHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	providerType := strings.ToUpper(strings.TrimSpace(c.Query("type")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("organization_id = ?", organizationID)

	if providerType != "" {
		if !models.ProviderType(providerType).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_provider_type"})
			return
		}
		q = q.Where("type = ?", providerType)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var providers []models.Provider
	if err := q.
		Order("id ASC").
		Find(&providers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_providers"})
		return
	}

	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	providerType := models.ProviderType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !providerType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_provider_type"})
		return
	}

	provider := models.Provider{
		OrganizationID: organizationID,
		Type:           providerType,
		Name:           req.Name,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Languages:      req.Languages,
		VehicleType:    req.VehicleType,
		Specialty:      req.Specialty,
		ServiceAreas:   req.ServiceAreas,
		Active:         true,
	}

	if err := h.db.Create(&provider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_provider"})
		return
	}

	c.JSON(http.StatusCreated, provider)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id := c.Param("id")

	var provider models.Provider
	if err := h.db.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&provider).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_provider"})
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.Email != nil {
		provider.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		provider.Phone = *req.Phone
	}
	if req.Languages != nil {
		provider.Languages = *req.Languages
	}
	if req.VehicleType != nil {
		provider.VehicleType = *req.VehicleType
	}
	if req.Specialty != nil {
		provider.Specialty = *req.Specialty
	}
	if req.ServiceAreas != nil {
		provider.ServiceAreas = *req.ServiceAreas
	}
	if req.Active != nil {
		provider.Active = *req.Active
	}

	if err := h.db.Save(&provider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_provider"})
		return
	}

	c.JSON(http.StatusOK, provider)
}
