package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
	ucavailability "github.com/ThriveAssessments/case-manager/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db     *gorm.DB
	saveUC *ucavailability.SaveCompleteAvailability
	getUC  *ucavailability.GetCompleteAvailability
}

func NewAvailabilityHandler(
	db *gorm.DB,
	saveUC *ucavailability.SaveCompleteAvailability,
	getUC *ucavailability.GetCompleteAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:     db,
		saveUC: saveUC,
		getUC:  getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAvailabilityRequest struct {
	WeeklyHours   domain.WeeklyState     `json:"weeklyHours"`
	OverrideHours []domain.OverrideEntry `json:"overrideHours"`
}

// ======================================================
// GET /me/providers/:id/availability
// ======================================================

func (h *AvailabilityHandler) Get(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	provider, org, ok := h.resolveProvider(c, organizationID)
	if !ok {
		return
	}

	result, err := h.getUC.Execute(
		c.Request.Context(),
		provider.Type,
		provider.ID,
		locationFromOrg(org),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// PUT /me/providers/:id/availability
// ======================================================

func (h *AvailabilityHandler) Update(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	provider, org, ok := h.resolveProvider(c, organizationID)
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Validation runs here so the specific message reaches the form.
	if r := domain.ValidateTimeSlots(req.WeeklyHours, req.OverrideHours); !r.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "invalid_time_slots",
			"errorMessage": r.ErrorMessage,
		})
		return
	}

	err := h.saveUC.Execute(c.Request.Context(), ucavailability.SaveCompleteInput{
		OrganizationID: organizationID,
		UserID:         userID,
		ProviderType:   provider.Type,
		RefID:          provider.ID,
		WeeklyHours:    req.WeeklyHours,
		OverrideHours:  req.OverrideHours,
		Location:       locationFromOrg(org),
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not save availability.")
			return
		}
		httperr.Internal(c, "failed_to_save_availability", "Could not save availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func (h *AvailabilityHandler) resolveProvider(
	c *gin.Context,
	organizationID uint,
) (*models.Provider, *models.Organization, bool) {

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider id.")
		return nil, nil, false
	}

	var provider models.Provider
	if err := h.db.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&provider).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "provider_not_found", "Provider not found.")
			return nil, nil, false
		}
		httperr.Internal(c, "failed_to_get_provider", "Could not load provider.")
		return nil, nil, false
	}

	var org models.Organization
	if err := h.db.First(&org, organizationID).Error; err != nil {
		httperr.Internal(c, "organization_not_found", "Organization not found.")
		return nil, nil, false
	}

	return &provider, &org, true
}
