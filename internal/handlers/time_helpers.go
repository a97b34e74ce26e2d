package handlers

import (
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/timezone"
)

// locationFromOrg resolves the organization's timezone, falling back to the
// service default when the stored value is empty or invalid.
func locationFromOrg(org *models.Organization) *time.Location {
	if org != nil && org.Timezone != "" {
		if loc, err := time.LoadLocation(org.Timezone); err == nil {
			return loc
		}
	}

	return timezone.Location(timezone.DefaultTimezone)
}

func parseDateInOrg(org *models.Organization, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromOrg(org),
	)
}
