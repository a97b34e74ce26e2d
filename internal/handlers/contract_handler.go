package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
	uccontract "github.com/ThriveAssessments/case-manager/internal/usecase/contract"
)

// ======================================================
// HANDLER
// ======================================================

type ContractHandler struct {
	db       *gorm.DB
	createUC *uccontract.CreateContract
	signUC   *uccontract.SignContract
	reviewUC *uccontract.ReviewContract
}

func NewContractHandler(
	db *gorm.DB,
	createUC *uccontract.CreateContract,
	signUC *uccontract.SignContract,
	reviewUC *uccontract.ReviewContract,
) *ContractHandler {
	return &ContractHandler{
		db:       db,
		createUC: createUC,
		signUC:   signUC,
		reviewUC: reviewUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateContractRequest struct {
	TemplateID     uint              `json:"template_id" binding:"required"`
	FeeStructureID *uint             `json:"fee_structure_id"`
	ReferralID     uint              `json:"referral_id" binding:"required"`
	Values         map[string]string `json:"values"`
}

type SignContractRequest struct {
	SignerName string `json:"signer_name" binding:"required"`

	// Base64 payload of the canvas-captured signature, with or without the
	// data URI prefix.
	SignatureImage string `json:"signature_image" binding:"required"`

	CheckedOptions map[string][]string `json:"checked_options"`
}

type ReviewContractRequest struct {
	AdminSignature string `json:"admin_signature" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ContractHandler) Create(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ct, err := h.createUC.Execute(c.Request.Context(), uccontract.CreateContractInput{
		OrganizationID: organizationID,
		UserID:         userID,
		TemplateID:     req.TemplateID,
		FeeStructureID: req.FeeStructureID,
		ReferralID:     req.ReferralID,
		Values:         req.Values,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not create contract.")
			return
		}
		httperr.Internal(c, "failed_to_create_contract", "Could not create contract.")
		return
	}

	c.JSON(http.StatusCreated, ct)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *ContractHandler) Get(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id := c.Param("id")

	var ct models.Contract
	if err := h.db.
		Preload("Template").
		Preload("FeeStructure").
		Preload("FeeStructure.Variables").
		Preload("Referral").
		Preload("Referral.Claimant").
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&ct).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "contract_not_found", "Contract not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_contract", "Could not load contract.")
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *ContractHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	status := strings.TrimSpace(c.Query("status"))

	q := h.db.
		Preload("Template").
		Where("organization_id = ?", organizationID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var contracts []models.Contract
	if err := q.
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_contracts", "Could not list contracts.")
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// ======================================================
// SIGN
// ======================================================

func (h *ContractHandler) Sign(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_contract_id", "Invalid contract id.")
		return
	}

	var req SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	image, err := decodeSignaturePayload(req.SignatureImage)
	if err != nil {
		httperr.BadRequest(c, "invalid_signature_image", "Signature image could not be decoded.")
		return
	}

	ct, err := h.signUC.Execute(c.Request.Context(), uccontract.SignContractInput{
		OrganizationID: organizationID,
		UserID:         userID,
		ContractID:     uint(id),
		SignerName:     req.SignerName,
		SignatureImage: image,
		CheckedOptions: req.CheckedOptions,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not sign contract.")
			return
		}
		httperr.Internal(c, "failed_to_sign_contract", "Could not sign contract.")
		return
	}

	c.JSON(http.StatusOK, ct)
}

// decodeSignaturePayload accepts either a raw base64 string or a full
// "data:image/png;base64,..." URI.
func decodeSignaturePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

// ======================================================
// REVIEW
// ======================================================

func (h *ContractHandler) Review(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_contract_id", "Invalid contract id.")
		return
	}

	var req ReviewContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ct, err := h.reviewUC.Execute(c.Request.Context(), uccontract.ReviewContractInput{
		OrganizationID: organizationID,
		UserID:         userID,
		ContractID:     uint(id),
		AdminSignature: req.AdminSignature,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not review contract.")
			return
		}
		httperr.Internal(c, "failed_to_review_contract", "Could not review contract.")
		return
	}

	c.JSON(http.StatusOK, ct)
}
