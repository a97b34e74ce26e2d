package contract

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/notify"
)

// Placeholder that receives the claimant's signature image at signing time.
const claimantSignatureKey = "custom.claimant_signature"

// ======================================================
// INPUT
// ======================================================

type SignContractInput struct {
	OrganizationID uint
	UserID         uint
	ContractID     uint

	SignerName string

	// Decoded bytes of the canvas-captured signature image (PNG or JPEG).
	SignatureImage []byte

	// Checked options per checkbox group.
	CheckedOptions map[string][]string
}

// ImageNormalizer converts a captured signature image into the stored form.
type ImageNormalizer func(data []byte) ([]byte, error)

// ======================================================
// USE CASE
// ======================================================

type SignContract struct {
	repo      domain.Repository
	store     domain.DocumentStore
	normalize ImageNormalizer
	audit     *audit.Dispatcher
	notifier  notify.Notifier
}

func NewSignContract(
	repo domain.Repository,
	store domain.DocumentStore,
	normalize ImageNormalizer,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
) *SignContract {
	return &SignContract{
		repo:      repo,
		store:     store,
		normalize: normalize,
		audit:     audit,
		notifier:  notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SignContract) Execute(
	ctx context.Context,
	in SignContractInput,
) (*models.Contract, error) {

	ct, err := uc.repo.GetContract(ctx, in.OrganizationID, in.ContractID)
	if err != nil {
		return nil, httperr.ErrBusiness("contract_not_found")
	}

	if err := domain.CanSign(domain.Status(ct.Status)); err != nil {
		return nil, err
	}

	image, err := uc.normalize(in.SignatureImage)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_signature_image")
	}

	docID := uuid.NewString()
	signatureKey := fmt.Sprintf("contracts/%s/signature.webp", docID)
	if err := uc.store.Put(ctx, signatureKey, "image/webp", image); err != nil {
		return nil, err
	}

	tpl, err := uc.repo.GetTemplate(ctx, in.OrganizationID, ct.TemplateID)
	if err != nil {
		return nil, httperr.ErrBusiness("template_not_found")
	}

	org, err := uc.repo.GetOrganizationByID(ctx, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	values := domain.SystemValues(org, now)
	for k, v := range ct.VariableValues {
		values[k] = v
	}
	values[claimantSignatureKey] = signatureTag(image)

	rendered := domain.ParseDocument(tpl.HTMLContent).Render(values, in.CheckedOptions)

	documentKey := fmt.Sprintf("contracts/%s/document.html", docID)
	if err := uc.store.Put(ctx, documentKey, "text/html", []byte(rendered)); err != nil {
		return nil, err
	}

	if err := domain.Sign(ct, in.SignerName, now); err != nil {
		return nil, err
	}
	ct.SignatureKey = signatureKey
	ct.DocumentKey = documentKey

	if err := uc.repo.UpdateContract(ctx, ct); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.UserID,
		Action:         "contract_signed",
		Entity:         "contract",
		EntityID:       &ct.ID,
	})

	uc.notifier.ContractSigned(ctx, ct)

	return ct, nil
}

// signatureTag embeds the stored image inline so the rendered document stays
// self-contained.
func signatureTag(image []byte) string {
	return fmt.Sprintf(
		`<img class="signature" alt="signature" src="data:image/webp;base64,%s">`,
		base64.StdEncoding.EncodeToString(image),
	)
}
