package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/referral"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/middleware"
	ucreferral "github.com/ThriveAssessments/case-manager/internal/usecase/referral"
)

// ======================================================
// HANDLER
// ======================================================

type ReferralHandler struct {
	db       *gorm.DB
	wizard   *ucreferral.DraftWizard
	submitUC *ucreferral.SubmitReferral
	repo     domain.Repository
}

func NewReferralHandler(
	db *gorm.DB,
	wizard *ucreferral.DraftWizard,
	submitUC *ucreferral.SubmitReferral,
	repo domain.Repository,
) *ReferralHandler {
	return &ReferralHandler{
		db:       db,
		wizard:   wizard,
		submitUC: submitUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DraftStepRequest struct {
	DraftID string `json:"draft_id"`
	Step    string `json:"step" binding:"required"`

	Claimant    *domain.ClaimantStep    `json:"claimant"`
	Insurance   *domain.InsuranceStep   `json:"insurance"`
	Legal       *domain.LegalStep       `json:"legal"`
	Examination *domain.ExaminationStep `json:"examination"`
}

type SubmitDraftRequest struct {
	DraftID string `json:"draft_id" binding:"required"`
}

// ======================================================
// DRAFT WIZARD
// ======================================================

func (h *ReferralHandler) SaveDraftStep(c *gin.Context) {
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

func (h *ReferralHandler) GetDraft(c *gin.Context) {
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

// ======================================================
// SUBMIT
// ======================================================

func (h *ReferralHandler) Submit(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SubmitDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ref, err := h.submitUC.Execute(c.Request.Context(), organizationID, &userID, req.DraftID)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not submit referral.")
			return
		}
		httperr.Internal(c, "failed_to_submit_referral", "Could not submit referral.")
		return
	}

	c.JSON(http.StatusCreated, ref)
}

// ======================================================
// READ
// ======================================================

func (h *ReferralHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	status := strings.TrimSpace(c.Query("status"))

	refs, err := h.repo.ListReferrals(c.Request.Context(), organizationID, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_referrals", "Could not list referrals.")
		return
	}

	c.JSON(http.StatusOK, refs)
}

func (h *ReferralHandler) Get(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_referral_id", "Invalid referral id.")
		return
	}

	ref, err := h.repo.GetReferral(c.Request.Context(), organizationID, uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "referral_not_found", "Referral not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_referral", "Could not load referral.")
		return
	}

	c.JSON(http.StatusOK, ref)
}
