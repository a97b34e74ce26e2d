package contract

import (
	"sort"
	"strings"
)

// Variable namespaces. contract.* and custom.* values are collected from the
// user before rendering; thrive.* values are populated by the system; bare
// keys come from the selected fee structure.
const (
	NamespaceContract = "contract."
	NamespaceThrive   = "thrive."
	NamespaceCustom   = "custom."
)

// Keys that belong to the review stage and are never collected during
// contract creation, even when the template references them.
const (
	KeyReviewDate     = "contract.review_date"
	KeyAdminSignature = "custom.admin_signature"
)

type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

// Keys returns the sorted key list for deterministic reporting.
func (s KeySet) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParsePlaceholders scans template content for {{...}} variable tokens and
// returns the distinct set of referenced keys. Repeated references collapse
// to one entry; checkbox-group tokens are structural, not variables.
func ParsePlaceholders(htmlContent string) KeySet {
	return ParseDocument(htmlContent).Placeholders()
}

// ExtractRequiredFeeVariables returns the subset of referenced keys that must
// come from a fee structure: bare keys with no recognized namespace. An empty
// result means fee-structure selection is optional for this template.
func ExtractRequiredFeeVariables(htmlContent string) KeySet {
	out := NewKeySet()
	for key := range FilterReviewStageKeys(ParsePlaceholders(htmlContent)) {
		if !hasNamespace(key) {
			out.Add(key)
		}
	}
	return out
}

// RequiredUserVariables returns the contract.* and custom.* keys that must be
// collected from the user before the contract body can render. Review-stage
// keys are excluded regardless of placeholder presence.
func RequiredUserVariables(htmlContent string) KeySet {
	out := NewKeySet()
	for key := range FilterReviewStageKeys(ParsePlaceholders(htmlContent)) {
		if strings.HasPrefix(key, NamespaceContract) || strings.HasPrefix(key, NamespaceCustom) {
			out.Add(key)
		}
	}
	return out
}

// FilterReviewStageKeys drops the review-stage keys from a set before any
// creation-time validation runs.
func FilterReviewStageKeys(s KeySet) KeySet {
	out := NewKeySet()
	for key := range s {
		if key == KeyReviewDate || key == KeyAdminSignature {
			continue
		}
		out.Add(key)
	}
	return out
}

// NormalizeCustomKey strips the custom. namespace before lookup against a
// fee structure's variable keys.
func NormalizeCustomKey(key string) string {
	return strings.TrimPrefix(key, NamespaceCustom)
}

// DenormalizeCustomKey re-applies the custom. namespace for reporting back to
// the caller when the original key carried it.
func DenormalizeCustomKey(key string) string {
	if strings.HasPrefix(key, NamespaceCustom) {
		return key
	}
	return NamespaceCustom + key
}

func hasNamespace(key string) bool {
	return strings.HasPrefix(key, NamespaceContract) ||
		strings.HasPrefix(key, NamespaceThrive) ||
		strings.HasPrefix(key, NamespaceCustom)
}
