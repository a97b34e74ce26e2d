package contract

import "github.com/ThriveAssessments/case-manager/internal/models"

type CompatibilityResult struct {
	Compatible  bool     `json:"compatible"`
	MissingKeys []string `json:"missing_keys,omitempty"`
}

// ValidateFeeStructureCompatibility reports whether the fee structure's
// variable set satisfies every fee key the template requires. Composite
// variables contribute their sub-field keys as well. When requiredFeeVars is
// nil the required set is derived from htmlContent.
func ValidateFeeStructureCompatibility(
	requiredFeeVars KeySet,
	feeStructureVariables []models.FeeVariable,
	htmlContent string,
) CompatibilityResult {

	if requiredFeeVars == nil {
		requiredFeeVars = ExtractRequiredFeeVariables(htmlContent)
	}

	available := NewKeySet()
	for _, v := range feeStructureVariables {
		available.Add(v.Key)
		if v.Type == models.FeeVarComposite {
			for _, sub := range v.SubFields {
				available.Add(sub.Key)
			}
		}
	}

	var missing []string
	for _, key := range requiredFeeVars.Keys() {
		if !available.Has(NormalizeCustomKey(key)) {
			missing = append(missing, key)
		}
	}

	return CompatibilityResult{
		Compatible:  len(missing) == 0,
		MissingKeys: missing,
	}
}

// CompatibleFeeStructures filters the selectable fee structures down to those
// that leave no unresolved fee placeholder in the template.
func CompatibleFeeStructures(
	requiredFeeVars KeySet,
	structures []models.FeeStructure,
	htmlContent string,
) []models.FeeStructure {

	if requiredFeeVars == nil {
		requiredFeeVars = ExtractRequiredFeeVariables(htmlContent)
	}

	var out []models.FeeStructure
	for _, fs := range structures {
		if ValidateFeeStructureCompatibility(requiredFeeVars, fs.Variables, htmlContent).Compatible {
			out = append(out, fs)
		}
	}
	return out
}
