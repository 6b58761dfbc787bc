package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDocumentsRequested.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusDenied.IsTerminal())
}

func TestStatusIsReviewable(t *testing.T) {
	// approve/deny act on PENDING and DOCUMENTS_REQUESTED only
	assert.True(t, StatusPending.IsReviewable())
	assert.True(t, StatusDocumentsRequested.IsReviewable())
	assert.False(t, StatusApproved.IsReviewable())
	assert.False(t, StatusDenied.IsReviewable())
}

func TestStatusIsCreatorEditable(t *testing.T) {
	assert.True(t, StatusPending.IsCreatorEditable())
	assert.True(t, StatusDocumentsRequested.IsCreatorEditable())
	assert.False(t, StatusApproved.IsCreatorEditable())
	assert.False(t, StatusDenied.IsCreatorEditable())
}

func TestCreditFullName(t *testing.T) {
	cr := PlacementCredit{CreditFirstName: "Jane", CreditLastName: "Doe"}
	assert.Equal(t, "Jane Doe", cr.FullName())

	cr = PlacementCredit{CreditLastName: "Doe"}
	assert.Equal(t, "Doe", cr.FullName())

	cr = PlacementCredit{CreditFirstName: "Jane"}
	assert.Equal(t, "Jane", cr.FullName())
}
