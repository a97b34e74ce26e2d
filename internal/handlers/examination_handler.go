package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/examination"
	"github.com/ThriveAssessments/case-manager/internal/dto"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
	ucexamination "github.com/ThriveAssessments/case-manager/internal/usecase/examination"
)

// ======================================================
// HANDLER
// ======================================================

type ExaminationHandler struct {
	db         *gorm.DB
	repo       domain.Repository
	createUC   *ucexamination.CreateExamination
	cancelUC   *ucexamination.CancelExamination
	completeUC *ucexamination.CompleteExamination
}

func NewExaminationHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucexamination.CreateExamination,
	cancelUC *ucexamination.CancelExamination,
	completeUC *ucexamination.CompleteExamination,
) *ExaminationHandler {
	return &ExaminationHandler{
		db:         db,
		repo:       repo,
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateExaminationRequest struct {
	ReferralID uint `json:"referral_id" binding:"required"`
	ExaminerID uint `json:"examiner_id" binding:"required"`
	ExamTypeID uint `json:"exam_type_id" binding:"required"`

	InterpreterID *uint `json:"interpreter_id"`
	ChaperoneID   *uint `json:"chaperone_id"`
	TransporterID *uint `json:"transporter_id"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ExaminationHandler) Create(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateExaminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ex, err := h.createUC.Execute(c.Request.Context(), ucexamination.CreateExaminationInput{
		OrganizationID: organizationID,
		UserID:         userID,
		ReferralID:     req.ReferralID,
		ExaminerID:     req.ExaminerID,
		ExamTypeID:     req.ExamTypeID,
		InterpreterID:  req.InterpreterID,
		ChaperoneID:    req.ChaperoneID,
		TransporterID:  req.TransporterID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not schedule examination.")
			return
		}
		httperr.Internal(c, "failed_to_create_examination", "Could not schedule examination.")
		return
	}

	c.JSON(http.StatusCreated, ex)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *ExaminationHandler) ListByDate(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	var org models.Organization
	if err := h.db.First(&org, organizationID).Error; err != nil {
		httperr.Internal(c, "organization_not_found", "Organization not found.")
		return
	}

	dayStart, err := parseDateInOrg(&org, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	exams, err := h.repo.ListExaminationsForPeriod(
		c.Request.Context(),
		organizationID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_examinations", "Could not list examinations.")
		return
	}

	c.JSON(http.StatusOK, dto.ExaminationListFromModels(exams, locationFromOrg(&org)))
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *ExaminationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancelUC.Execute)
}

func (h *ExaminationHandler) Complete(c *gin.Context) {
	h.transition(c, h.completeUC.Execute)
}

func (h *ExaminationHandler) transition(
	c *gin.Context,
	exec func(ctx context.Context, organizationID, userID, examinationID uint) (*models.Examination, error),
) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_examination_id", "Invalid examination id.")
		return
	}

	ex, err := exec(c.Request.Context(), organizationID, userID, uint(id))
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not update examination.")
			return
		}
		httperr.Internal(c, "failed_to_update_examination", "Could not update examination.")
		return
	}

	c.JSON(http.StatusOK, ex)
}
