package contract

import (
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

// SystemValues builds the thrive.* variable set from the organization row.
// These keys are never collected from the user; they are merged into the
// value map at render time so a template can reference the assessment
// company's own details.
func SystemValues(org *models.Organization, now time.Time) map[string]string {
	return map[string]string{
		"thrive.company_name":    org.Name,
		"thrive.company_phone":   org.Phone,
		"thrive.company_address": org.Address,
		"thrive.current_date":    now.Format("January 2, 2006"),
	}
}
