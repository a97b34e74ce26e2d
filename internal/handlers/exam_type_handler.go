package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type ExamTypeHandler struct {
	db *gorm.DB
}

func NewExamTypeHandler(db *gorm.DB) *ExamTypeHandler {
	return &ExamTypeHandler{db: db}
}

// --------- Requests ---------

type CreateExamTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
}

type UpdateExamTypeRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ExamTypeHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("organization_id = ?", organizationID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
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
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var types []models.ExamType
	if err := q.
		Order("id ASC").
		Find(&types).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_exam_types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *ExamTypeHandler) Create(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var req CreateExamTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	examType := models.ExamType{
		OrganizationID: organizationID,
		Name:           req.Name,
		Description:    req.Description,
		DurationMin:    req.DurationMin,
		Price:          req.Price,
		Active:         true,
		Category:       strings.ToLower(req.Category),
	}

	if err := h.db.Create(&examType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_exam_type"})
		return
	}

	c.JSON(http.StatusCreated, examType)
}

func (h *ExamTypeHandler) Update(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id := c.Param("id")

	var examType models.ExamType
	if err := h.db.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&examType).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "exam_type_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_exam_type"})
		return
	}

	var req UpdateExamTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		examType.Name = *req.Name
	}
	if req.Description != nil {
		examType.Description = *req.Description
	}
	if req.DurationMin != nil {
		examType.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		examType.Price = *req.Price
	}
	if req.Active != nil {
		examType.Active = *req.Active
	}

	if err := h.db.Save(&examType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_exam_type"})
		return
	}

	c.JSON(http.StatusOK, examType)
}
