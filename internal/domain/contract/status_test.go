package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStatus_ReadyToSign(t *testing.T) {
	assert.Equal(t, StatusPendingSignature, InitialStatus())
	assert.NoError(t, CanSign(InitialStatus()))
}

func TestCanSign_OnlyFromPendingSignature(t *testing.T) {
	assert.NoError(t, CanSign(StatusPendingSignature))
	assert.Error(t, CanSign(StatusSigned))
	assert.Error(t, CanSign(StatusReviewed))
}

func TestCanReview_OnlyFromSigned(t *testing.T) {
	assert.NoError(t, CanReview(StatusSigned))
	assert.Error(t, CanReview(StatusPendingSignature))
	assert.Error(t, CanReview(StatusReviewed))
}
