package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementtrack_backend/internals/features/placements/model"
	userService "placementtrack_backend/internals/features/users/service"
)

func testAccount() *userService.DirectoryAccount {
	return &userService.DirectoryAccount{
		UserID:         uuid.NewString(),
		UserName:       "janedoe",
		Email:          "jane@placementtrack.app",
		ProAffiliation: "BMI",
		ProfilePro:     "ASCAP",
		IPINumber:      "00123456789",
	}
}

func TestApplyDirectoryMatch_LinksAndBackfills(t *testing.T) {
	acct := testAccount()
	cr := &model.PlacementCredit{
		CreditFirstName:  "Jane",
		CreditLastName:   "Doe",
		CreditRole:       "writer",
		CreditIsExternal: true,
	}

	ApplyDirectoryMatch(cr, acct)

	require.True(t, cr.IsLinked())
	assert.Equal(t, acct.UserID, cr.CreditUserID.String())
	assert.False(t, cr.CreditIsExternal)
	// prefers the account's own declared affiliation over the profile's
	assert.Equal(t, "BMI", cr.CreditProAffiliation)
	assert.Equal(t, "00123456789", cr.CreditIPINumber)
}

func TestApplyDirectoryMatch_ProfileFallback(t *testing.T) {
	acct := testAccount()
	acct.ProAffiliation = ""

	cr := &model.PlacementCredit{CreditFirstName: "Jane", CreditLastName: "Doe"}
	ApplyDirectoryMatch(cr, acct)

	assert.Equal(t, "ASCAP", cr.CreditProAffiliation)
}

func TestApplyDirectoryMatch_NeverOverwrites(t *testing.T) {
	acct := testAccount()
	cr := &model.PlacementCredit{
		CreditFirstName:      "Jane",
		CreditLastName:       "Doe",
		CreditRole:           "producer",
		CreditSplitPercent:   25,
		CreditProAffiliation: "SESAC",
		CreditIPINumber:      "99999999999",
	}

	ApplyDirectoryMatch(cr, acct)

	// linked, but nothing the creator typed in gets replaced
	require.True(t, cr.IsLinked())
	assert.Equal(t, "SESAC", cr.CreditProAffiliation)
	assert.Equal(t, "99999999999", cr.CreditIPINumber)
	assert.Equal(t, "producer", cr.CreditRole)
	assert.Equal(t, 25.0, cr.CreditSplitPercent)
	assert.Equal(t, "Jane", cr.CreditFirstName)
	assert.Equal(t, "Doe", cr.CreditLastName)
}

func TestApplyDirectoryMatch_BadAccountID(t *testing.T) {
	acct := testAccount()
	acct.UserID = "not-a-uuid"

	cr := &model.PlacementCredit{CreditFirstName: "Jane", CreditLastName: "Doe", CreditIsExternal: true}
	ApplyDirectoryMatch(cr, acct)

	assert.False(t, cr.IsLinked())
	assert.True(t, cr.CreditIsExternal)
	assert.Empty(t, cr.CreditProAffiliation)
}
