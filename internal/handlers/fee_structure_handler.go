package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type FeeStructureHandler struct {
	db *gorm.DB
}

func NewFeeStructureHandler(db *gorm.DB) *FeeStructureHandler {
	return &FeeStructureHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type FeeVariableInput struct {
	Key       string            `json:"key" binding:"required"`
	Label     string            `json:"label"`
	Type      string            `json:"type" binding:"required"`
	Required  bool              `json:"required"`
	Included  bool              `json:"included"`
	SubFields []models.SubField `json:"sub_fields"`
}

type CreateFeeStructureRequest struct {
	Name      string             `json:"name" binding:"required"`
	Variables []FeeVariableInput `json:"variables" binding:"required"`
}

type UpdateFeeStructureRequest struct {
	Name      *string             `json:"name,omitempty"`
	Active    *bool               `json:"active,omitempty"`
	Variables *[]FeeVariableInput `json:"variables,omitempty"`
}

func validFeeVarType(t string) bool {
	switch models.FeeVariableType(t) {
	case models.FeeVarMoney, models.FeeVarNumber, models.FeeVarText,
		models.FeeVarBoolean, models.FeeVarComposite:
		return true
	}
	return false
}

// ======================================================
// HANDLERS
// ======================================================

func (h *FeeStructureHandler) List(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var structures []models.FeeStructure
	if err := h.db.
		Preload("Variables").
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&structures).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_fee_structures"})
		return
	}

	c.JSON(http.StatusOK, structures)
}

func (h *FeeStructureHandler) Create(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	var req CreateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	variables, ok := buildFeeVariables(c, req.Variables)
	if !ok {
		return
	}

	fs := models.FeeStructure{
		OrganizationID: organizationID,
		Name:           req.Name,
		Active:         true,
		Variables:      variables,
	}

	if err := h.db.Create(&fs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_fee_structure"})
		return
	}

	c.JSON(http.StatusCreated, fs)
}

func (h *FeeStructureHandler) Update(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(uint)

	id := c.Param("id")

	var fs models.FeeStructure
	if err := h.db.
		Preload("Variables").
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&fs).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "fee_structure_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_fee_structure"})
		return
	}

	var req UpdateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		fs.Name = *req.Name
	}
	if req.Active != nil {
		fs.Active = *req.Active
	}

	var variables []models.FeeVariable
	if req.Variables != nil {
		var ok bool
		variables, ok = buildFeeVariables(c, *req.Variables)
		if !ok {
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.Variables != nil {
			if err := tx.
				Where("fee_structure_id = ?", fs.ID).
				Delete(&models.FeeVariable{}).Error; err != nil {
				return err
			}

			for i := range variables {
				variables[i].FeeStructureID = fs.ID
			}
			if len(variables) > 0 {
				if err := tx.Create(&variables).Error; err != nil {
					return err
				}
			}
			fs.Variables = variables
		}

		return tx.Save(&fs).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_fee_structure"})
		return
	}

	c.JSON(http.StatusOK, fs)
}

func buildFeeVariables(
	c *gin.Context,
	inputs []FeeVariableInput,
) ([]models.FeeVariable, bool) {

	variables := make([]models.FeeVariable, 0, len(inputs))
	for _, v := range inputs {
		varType := strings.ToUpper(strings.TrimSpace(v.Type))
		if !validFeeVarType(varType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fee_variable_type"})
			return nil, false
		}

		if models.FeeVariableType(varType) == models.FeeVarComposite && len(v.SubFields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "composite_requires_sub_fields"})
			return nil, false
		}

		variables = append(variables, models.FeeVariable{
			Key:       strings.TrimSpace(v.Key),
			Label:     v.Label,
			Type:      models.FeeVariableType(varType),
			Required:  v.Required,
			Included:  v.Included,
			SubFields: v.SubFields,
		})
	}

	return variables, true
}
