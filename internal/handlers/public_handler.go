package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	availdomain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	ucavailability "github.com/ThriveAssessments/case-manager/internal/usecase/availability"
	ucreferral "github.com/ThriveAssessments/case-manager/internal/usecase/referral"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the unauthenticated intake surface: referring parties
// (law firms, insurers) reach it through the organization's slug.
type PublicHandler struct {
	db       *gorm.DB
	wizard   *ucreferral.DraftWizard
	submitUC *ucreferral.SubmitReferral
	availUC  *ucavailability.GetCompleteAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	wizard *ucreferral.DraftWizard,
	submitUC *ucreferral.SubmitReferral,
	availUC *ucavailability.GetCompleteAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		wizard:   wizard,
		submitUC: submitUC,
		availUC:  availUC,
	}
}

func (h *PublicHandler) orgBySlug(c *gin.Context) (*models.Organization, bool) {
	slug := c.Param("slug")

	var org models.Organization
	if err := h.db.Where("slug = ?", slug).First(&org).Error; err != nil {
		httperr.NotFound(c, "organization_not_found", "Organization not found.")
		return nil, false
	}

	return &org, true
}

////////////////////////////////////////////////////////
// EXAM TYPES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListExamTypes(c *gin.Context) {
	org, ok := h.orgBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("organization_id = ? AND active = true", org.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var types []models.ExamType
	if err := q.Order("id ASC").Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_exam_types", "Could not list exam types.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": gin.H{
			"id":   org.ID,
			"name": org.Name,
			"slug": org.Slug,
		},
		"exam_types": types,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// DayAvailability reports the slots that apply to one calendar date, with an
// override replacing the weekly schedule outright when present.
func (h *PublicHandler) DayAvailability(c *gin.Context) {
	org, ok := h.orgBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	providerIDStr := c.Query("provider_id")

	if dateStr == "" || providerIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Query parameters date and provider_id are required.")
		return
	}

	providerID, err := strconv.ParseUint(providerIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider id.")
		return
	}

	var provider models.Provider
	if err := h.db.
		Where("id = ? AND organization_id = ? AND active = true", providerID, org.ID).
		First(&provider).Error; err != nil {

		httperr.NotFound(c, "provider_not_found", "Provider not found.")
		return
	}

	date, err := parseDateInOrg(org, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	complete, err := h.availUC.Execute(
		c.Request.Context(),
		provider.Type,
		provider.ID,
		locationFromOrg(org),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      dateStr,
		"available": slotsForDate(complete, date, dateStr),
	})
}

// slotsForDate resolves which slots apply to one date: an override wins
// outright (zero slots means closed all day), otherwise the weekly schedule
// for that weekday applies when enabled.
func slotsForDate(
	complete *ucavailability.CompleteAvailability,
	date time.Time,
	dateStr string,
) []availdomain.TimeSlot {

	for _, entry := range complete.OverrideHours {
		if entry.Date == dateStr {
			return entry.TimeSlots
		}
	}

	day, ok := complete.WeeklyHours[weekdayFor(date)]
	if !ok || !day.Enabled {
		return []availdomain.TimeSlot{}
	}

	return day.TimeSlots
}

func weekdayFor(t time.Time) availdomain.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return availdomain.Monday
	case time.Tuesday:
		return availdomain.Tuesday
	case time.Wednesday:
		return availdomain.Wednesday
	case time.Thursday:
		return availdomain.Thursday
	case time.Friday:
		return availdomain.Friday
	case time.Saturday:
		return availdomain.Saturday
	default:
		return availdomain.Sunday
	}
}

////////////////////////////////////////////////////////
// REFERRAL INTAKE
////////////////////////////////////////////////////////

func (h *PublicHandler) SaveDraftStep(c *gin.Context) {
	if _, ok := h.orgBySlug(c); !ok {
		return
	}

	var req DraftStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	id, state, err := h.wizard.Update(c.Request.Context(), ucreferral.UpdateDraftInput{
		DraftID:     req.DraftID,
		Step:        req.Step,
		Claimant:    req.Claimant,
		Insurance:   req.Insurance,
		Legal:       req.Legal,
		Examination: req.Examination,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			if code == "draft_not_found" {
				httperr.NotFound(c, code, "Draft not found or expired.")
				return
			}
			httperr.BadRequest(c, code, "Could not save draft step.")
			return
		}
		httperr.Internal(c, "failed_to_save_draft", "Could not save draft step.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft_id": id,
		"state":    state,
	})
}

func (h *PublicHandler) GetDraft(c *gin.Context) {
	if _, ok := h.orgBySlug(c); !ok {
		return
	}

	id := strings.TrimSpace(c.Param("draftId"))

	state, err := h.wizard.Get(c.Request.Context(), id)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.NotFound(c, code, "Draft not found or expired.")
			return
		}
		httperr.Internal(c, "failed_to_get_draft", "Could not load draft.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft_id": id,
		"state":    state,
	})
}

func (h *PublicHandler) SubmitReferral(c *gin.Context) {
	org, ok := h.orgBySlug(c)
	if !ok {
		return
	}

	var req SubmitDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Public submissions carry no acting user.
	ref, err := h.submitUC.Execute(c.Request.Context(), org.ID, nil, req.DraftID)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not submit referral.")
			return
		}
		httperr.Internal(c, "failed_to_submit_referral", "Could not submit referral.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     ref.ID,
		"status": ref.Status,
	})
}
