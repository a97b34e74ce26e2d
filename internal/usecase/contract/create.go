package contract

import (
	"context"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateContractInput struct {
	OrganizationID uint
	UserID         uint

	TemplateID     uint
	FeeStructureID *uint
	ReferralID     uint

	// Variable values collected from the user, keyed by placeholder key.
	Values map[string]string
}

// ======================================================
// USE CASE
// ======================================================

type CreateContract struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateContract(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateContract {
	return &CreateContract{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateContract) Execute(
	ctx context.Context,
	in CreateContractInput,
) (*models.Contract, error) {

	tpl, err := uc.repo.GetTemplate(ctx, in.OrganizationID, in.TemplateID)
	if err != nil {
		return nil, httperr.ErrBusiness("template_not_found")
	}

	requiredFee := domain.ExtractRequiredFeeVariables(tpl.HTMLContent)

	feeStructureID, err := uc.resolveFeeStructure(ctx, in, tpl, requiredFee)
	if err != nil {
		return nil, err
	}

	// Every contract.* / custom.* placeholder must have a value before the
	// body can render. Review-stage keys are already filtered out.
	var missing []string
	for _, key := range domain.RequiredUserVariables(tpl.HTMLContent).Keys() {
		if _, ok := in.Values[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, httperr.ErrBusiness("missing_contract_variables")
	}

	values := models.JSONMap{}
	for k, v := range in.Values {
		values[k] = v
	}

	ct := &models.Contract{
		OrganizationID: in.OrganizationID,
		TemplateID:     tpl.ID,
		FeeStructureID: feeStructureID,
		ReferralID:     in.ReferralID,
		Status:         string(domain.InitialStatus()),
		VariableValues: values,
	}

	if err := uc.repo.CreateContract(ctx, ct); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.UserID,
		Action:         "contract_created",
		Entity:         "contract",
		EntityID:       &ct.ID,
	})

	return ct, nil
}

// resolveFeeStructure applies the selection rules: no fee placeholders means
// no fee structure is needed; an explicit choice must be compatible; with no
// choice the template default wins when compatible, then a single compatible
// candidate is auto-selected, and anything else blocks.
func (uc *CreateContract) resolveFeeStructure(
	ctx context.Context,
	in CreateContractInput,
	tpl *models.ContractTemplate,
	requiredFee domain.KeySet,
) (*uint, error) {

	if requiredFee.Len() == 0 {
		return nil, nil
	}

	if in.FeeStructureID != nil {
		fs, err := uc.repo.GetFeeStructure(ctx, in.OrganizationID, *in.FeeStructureID)
		if err != nil {
			return nil, httperr.ErrBusiness("fee_structure_not_found")
		}
		res := domain.ValidateFeeStructureCompatibility(requiredFee, fs.Variables, tpl.HTMLContent)
		if !res.Compatible {
			return nil, httperr.ErrBusiness("incompatible_fee_structure")
		}
		return &fs.ID, nil
	}

	if tpl.DefaultFeeStructureID != nil {
		fs, err := uc.repo.GetFeeStructure(ctx, in.OrganizationID, *tpl.DefaultFeeStructureID)
		if err == nil {
			res := domain.ValidateFeeStructureCompatibility(requiredFee, fs.Variables, tpl.HTMLContent)
			if res.Compatible {
				return &fs.ID, nil
			}
		}
	}

	structures, err := uc.repo.ListFeeStructures(ctx, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	compatible := domain.CompatibleFeeStructures(requiredFee, structures, tpl.HTMLContent)
	switch len(compatible) {
	case 0:
		return nil, httperr.ErrBusiness("no_compatible_fee_structure")
	case 1:
		id := compatible[0].ID
		return &id, nil
	default:
		return nil, httperr.ErrBusiness("fee_structure_selection_required")
	}
}
