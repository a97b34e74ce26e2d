package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

func feeVars(keys ...string) []models.FeeVariable {
	out := make([]models.FeeVariable, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.FeeVariable{Key: k, Type: models.FeeVarMoney})
	}
	return out
}

func TestValidateFeeStructureCompatibility_AllKeysPresent(t *testing.T) {
	html := `{{hourly_rate}} {{cancellation_fee}}`

	r := ValidateFeeStructureCompatibility(nil, feeVars("hourly_rate", "cancellation_fee", "extra"), html)
	assert.True(t, r.Compatible)
	assert.Empty(t, r.MissingKeys)
}

func TestValidateFeeStructureCompatibility_MissingKey(t *testing.T) {
	html := `{{hourly_rate}} {{cancellation_fee}}`

	r := ValidateFeeStructureCompatibility(nil, feeVars("hourly_rate"), html)
	assert.False(t, r.Compatible)
	assert.Equal(t, []string{"cancellation_fee"}, r.MissingKeys)
}

func TestValidateFeeStructureCompatibility_CompositeSubFields(t *testing.T) {
	html := `{{travel_fee_base}} {{travel_fee_per_km}}`

	vars := []models.FeeVariable{
		{
			Key:  "travel_fee",
			Type: models.FeeVarComposite,
			SubFields: models.SubFieldList{
				{Key: "travel_fee_base", Label: "Base", Type: "MONEY"},
				{Key: "travel_fee_per_km", Label: "Per km", Type: "MONEY"},
			},
		},
	}

	r := ValidateFeeStructureCompatibility(nil, vars, html)
	assert.True(t, r.Compatible)
}

func TestValidateFeeStructureCompatibility_NoFeePlaceholders(t *testing.T) {
	html := `{{contract.province}} {{thrive.company_name}}`

	// Any structure, even an empty one, is compatible when the template needs
	// no fee keys.
	r := ValidateFeeStructureCompatibility(nil, nil, html)
	assert.True(t, r.Compatible)
}

func TestValidateFeeStructureCompatibility_ReviewStageKeysIgnored(t *testing.T) {
	html := `{{contract.review_date}} {{custom.admin_signature}} {{hourly_rate}}`

	r := ValidateFeeStructureCompatibility(nil, feeVars("hourly_rate"), html)
	assert.True(t, r.Compatible)
}

func TestValidateFeeStructureCompatibility_ExplicitRequiredSet(t *testing.T) {
	required := NewKeySet("hourly_rate", "report_fee")

	r := ValidateFeeStructureCompatibility(required, feeVars("hourly_rate"), "")
	assert.False(t, r.Compatible)
	assert.Equal(t, []string{"report_fee"}, r.MissingKeys)
}

func TestCompatibleFeeStructures_Filters(t *testing.T) {
	html := `{{hourly_rate}}`

	structures := []models.FeeStructure{
		{Name: "Full", Variables: feeVars("hourly_rate", "report_fee")},
		{Name: "Empty"},
		{Name: "Minimal", Variables: feeVars("hourly_rate")},
	}

	out := CompatibleFeeStructures(nil, structures, html)
	require.Len(t, out, 2)
	assert.Equal(t, "Full", out[0].Name)
	assert.Equal(t, "Minimal", out[1].Name)
}
