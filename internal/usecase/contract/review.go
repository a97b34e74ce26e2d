package contract

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/logging"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ReviewContractInput struct {
	OrganizationID uint
	UserID         uint
	ContractID     uint

	// Rendered into the custom.admin_signature placeholder.
	AdminSignature string
}

// ======================================================
// USE CASE
// ======================================================

// ReviewContract fills in the review-stage fields that were deliberately
// excluded from creation-time validation and re-renders the document.
type ReviewContract struct {
	repo  domain.Repository
	store domain.DocumentStore
	audit *audit.Dispatcher
}

func NewReviewContract(
	repo domain.Repository,
	store domain.DocumentStore,
	audit *audit.Dispatcher,
) *ReviewContract {
	return &ReviewContract{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReviewContract) Execute(
	ctx context.Context,
	in ReviewContractInput,
) (*models.Contract, error) {

	ct, err := uc.repo.GetContract(ctx, in.OrganizationID, in.ContractID)
	if err != nil {
		return nil, httperr.ErrBusiness("contract_not_found")
	}

	if err := domain.CanReview(domain.Status(ct.Status)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	values := models.JSONMap{}
	for k, v := range ct.VariableValues {
		values[k] = v
	}
	values[domain.KeyReviewDate] = now.Format("January 2, 2006")
	values[domain.KeyAdminSignature] = in.AdminSignature

	if err := uc.rerender(ctx, ct, values); err != nil {
		// Best-effort fallback: the signed document already exists in the
		// store, so a failed re-render keeps the previous rendering.
		logging.L().Warn("contract re-render failed, keeping signed document",
			zap.Uint("contract_id", ct.ID),
			zap.Error(err),
		)
	}

	if err := domain.Review(ct, now); err != nil {
		return nil, err
	}
	ct.VariableValues = values

	if err := uc.repo.UpdateContract(ctx, ct); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.UserID,
		Action:         "contract_reviewed",
		Entity:         "contract",
		EntityID:       &ct.ID,
	})

	return ct, nil
}

func (uc *ReviewContract) rerender(
	ctx context.Context,
	ct *models.Contract,
	values models.JSONMap,
) error {

	tpl, err := uc.repo.GetTemplate(ctx, ct.OrganizationID, ct.TemplateID)
	if err != nil {
		return err
	}

	org, err := uc.repo.GetOrganizationByID(ctx, ct.OrganizationID)
	if err != nil {
		return err
	}

	rendered := domain.SystemValues(org, time.Now().UTC())
	for k, v := range values {
		rendered[k] = v
	}

	if ct.SignatureKey != "" {
		image, err := uc.store.Get(ctx, ct.SignatureKey)
		if err != nil {
			return err
		}
		rendered[claimantSignatureKey] = signatureTag(image)
	}

	html := domain.ParseDocument(tpl.HTMLContent).Render(rendered, nil)
	return uc.store.Put(ctx, ct.DocumentKey, "text/html", []byte(html))
}
