package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/ThriveAssessments/case-manager/internal/logging"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

// Notifier is the outbound notification collaborator. Actual delivery (email,
// SMS) lives outside this service; the shipped implementation records the
// events so an operator can see what would have been sent.
type Notifier interface {
	ReferralSubmitted(ctx context.Context, ref *models.Referral)
	ContractSigned(ctx context.Context, ct *models.Contract)
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ReferralSubmitted(_ context.Context, ref *models.Referral) {
	logging.L().Info("notification: referral submitted",
		zap.Uint("referral_id", ref.ID),
		zap.Uint("organization_id", ref.OrganizationID),
	)
}

func (n *LogNotifier) ContractSigned(_ context.Context, ct *models.Contract) {
	logging.L().Info("notification: contract signed",
		zap.Uint("contract_id", ct.ID),
		zap.Uint("organization_id", ct.OrganizationID),
	)
}
