package contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/notify"
)

// ======================================================
// FAKE DOCUMENT STORE
// ======================================================

type fakeDocumentStore struct {
	objects map[string][]byte
}

var _ domain.DocumentStore = (*fakeDocumentStore)(nil)

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{objects: map[string][]byte{}}
}

func (s *fakeDocumentStore) Put(_ context.Context, key string, _ string, body []byte) error {
	s.objects[key] = body
	return nil
}

func (s *fakeDocumentStore) Get(_ context.Context, key string) ([]byte, error) {
	return s.objects[key], nil
}

func identityNormalize(data []byte) ([]byte, error) {
	return data, nil
}

// ======================================================
// TESTS
// ======================================================

func signFixture(html string) (*fakeRepo, *fakeDocumentStore, *SignContract) {
	repo := &fakeRepo{
		org: &models.Organization{
			ID:      1,
			Name:    "Thrive Assessments",
			Phone:   "416-555-0199",
			Address: "100 King St W, Toronto",
		},
		template: &models.ContractTemplate{HTMLContent: html},
	}
	repo.template.ID = 1
	repo.created = &models.Contract{
		OrganizationID: 1,
		TemplateID:     1,
		Status:         string(domain.StatusPendingSignature),
		VariableValues: models.JSONMap{"contract.province": "Ontario"},
	}
	repo.created.ID = 5

	store := newFakeDocumentStore()
	uc := NewSignContract(repo, store, identityNormalize, testDispatcher(), notify.NewLogNotifier())
	return repo, store, uc
}

func TestSignContract_SubstitutesSystemValues(t *testing.T) {
	repo, store, uc := signFixture(
		`<p>{{thrive.company_name}}, {{thrive.company_address}}</p>` +
			`<p>Province: {{contract.province}}</p>`,
	)

	ct, err := uc.Execute(context.Background(), SignContractInput{
		OrganizationID: 1,
		UserID:         7,
		ContractID:     5,
		SignerName:     "Jordan Miles",
		SignatureImage: []byte("png-bytes"),
	})
	require.NoError(t, err)

	doc := string(store.objects[ct.DocumentKey])
	assert.Contains(t, doc, "Thrive Assessments")
	assert.Contains(t, doc, "100 King St W, Toronto")
	assert.Contains(t, doc, "Province: Ontario")
	assert.NotContains(t, doc, "{{thrive.")

	assert.Equal(t, string(domain.StatusSigned), repo.created.Status)
	assert.NotEmpty(t, ct.SignatureKey)
}

func TestSignContract_StoredValuesWinOverSystemValues(t *testing.T) {
	repo, store, uc := signFixture(`{{thrive.company_name}}`)

	// A value already stored on the contract, however it got there, must not
	// be silently overwritten by the organization row.
	repo.created.VariableValues["thrive.company_name"] = "Branch Office Ltd"

	ct, err := uc.Execute(context.Background(), SignContractInput{
		OrganizationID: 1,
		ContractID:     5,
		SignerName:     "Jordan Miles",
		SignatureImage: []byte("png-bytes"),
	})
	require.NoError(t, err)

	doc := string(store.objects[ct.DocumentKey])
	assert.Contains(t, doc, "Branch Office Ltd")
	assert.NotContains(t, doc, "Thrive Assessments")
}

func TestSignContract_RejectsWrongState(t *testing.T) {
	repo, _, uc := signFixture(`{{contract.province}}`)
	repo.created.Status = string(domain.StatusSigned)

	_, err := uc.Execute(context.Background(), SignContractInput{
		OrganizationID: 1,
		ContractID:     5,
		SignerName:     "Jordan Miles",
		SignatureImage: []byte("png-bytes"),
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
