package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type ClaimantHandler struct {
	db *gorm.DB
}

func NewClaimantHandler(db *gorm.DB) *ClaimantHandler {
	return &ClaimantHandler{db: db}
}

// ======================================================
// LIST CLAIMANTS
// ======================================================
func (h *ClaimantHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("organization_id = ?", organizationID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var claimants []models.Claimant
	if err := q.
		Order("created_at DESC").
		Find(&claimants).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_claimants",
		})
		return
	}

	c.JSON(http.StatusOK, claimants)
}
