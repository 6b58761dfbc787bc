package service

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dealModel "placementtrack_backend/internals/features/deals/model"
	placementModel "placementtrack_backend/internals/features/placements/model"
)

func approvedSubmission() *placementModel.PlacementSubmission {
	caseNumber := "PT-2025-007"
	year := 2024
	return &placementModel.PlacementSubmission{
		SubmissionID:          uuid.New(),
		SubmissionCaseNumber:  &caseNumber,
		SubmissionUserID:      uuid.New(),
		SubmissionTitle:       "Midnight Run",
		SubmissionArtist:      "The Night Owls",
		SubmissionAlbum:       "After Hours",
		SubmissionISRC:        "USRC12400001",
		SubmissionGenre:       "hip-hop",
		SubmissionReleaseYear: &year,
		SubmissionLabel:       "Owl Records",
		SubmissionStatus:      placementModel.StatusApproved,
	}
}

func testCredits() []placementModel.PlacementCredit {
	return []placementModel.PlacementCredit{
		{CreditFirstName: "Jane", CreditLastName: "Doe", CreditRole: "writer", CreditSplitPercent: 40, CreditIsPrimary: true},
		{CreditFirstName: "John", CreditLastName: "Smith", CreditRole: "writer", CreditSplitPercent: 35},
		{CreditFirstName: "Sam", CreditLastName: "Lee", CreditRole: "producer", CreditSplitPercent: 25},
	}
}

func TestBuildDeal_FromApprovedSubmission(t *testing.T) {
	sub := approvedSubmission()
	adminID := uuid.New()

	deal, err := BuildDeal(sub, testCredits(), "owner-display-name", adminID, "")
	require.NoError(t, err)

	assert.Equal(t, "PT-2025-007", deal.DealCaseNumber)
	assert.Equal(t, "Midnight Run", deal.DealTitle)
	assert.Equal(t, "The Night Owls", deal.DealArtist)
	assert.Equal(t, "USRC12400001", deal.DealISRC)
	assert.Equal(t, adminID, deal.DealCreatedBy)

	// both royalty types start at the collecting sentinel
	assert.Equal(t, dealModel.ClearanceCollecting, deal.DealPerformanceStatus)
	assert.Equal(t, dealModel.ClearanceCollecting, deal.DealMechanicalStatus)

	// provenance note references the originating case
	assert.Contains(t, deal.DealNotes, "PT-2025-007")
}

func TestBuildDeal_PrimaryWriterFromFlaggedCredit(t *testing.T) {
	deal, err := BuildDeal(approvedSubmission(), testCredits(), "owner-display-name", uuid.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", deal.DealPrimaryWriter)
	assert.Equal(t, "John Smith, Sam Lee", deal.DealCoWriters)
}

func TestBuildDeal_OwnerFallbackWhenNoPrimary(t *testing.T) {
	credits := testCredits()
	credits[0].CreditIsPrimary = false

	deal, err := BuildDeal(approvedSubmission(), credits, "Jane's Band", uuid.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "Jane's Band", deal.DealPrimaryWriter)
	assert.Equal(t, "Jane Doe, John Smith, Sam Lee", deal.DealCoWriters)
}

func TestBuildDeal_AdminNotesAppended(t *testing.T) {
	deal, err := BuildDeal(approvedSubmission(), testCredits(), "owner", uuid.New(), "cleared by phone")
	require.NoError(t, err)

	assert.Contains(t, deal.DealNotes, "Created from placement case PT-2025-007.")
	assert.Contains(t, deal.DealNotes, "cleared by phone")
}

func TestBuildDeal_SplitsSnapshot(t *testing.T) {
	deal, err := BuildDeal(approvedSubmission(), testCredits(), "owner", uuid.New(), "")
	require.NoError(t, err)

	var snapshots []CreditSplitSnapshot
	require.NoError(t, json.Unmarshal(deal.DealSplits, &snapshots))
	require.Len(t, snapshots, 3)
	assert.Equal(t, "Jane Doe", snapshots[0].Name)
	assert.Equal(t, 40.0, snapshots[0].SplitPercent)
	assert.Equal(t, "producer", snapshots[2].Role)
}

func TestBuildDeal_RequiresCaseNumber(t *testing.T) {
	sub := approvedSubmission()
	sub.SubmissionCaseNumber = nil

	_, err := BuildDeal(sub, testCredits(), "owner", uuid.New(), "")
	assert.Error(t, err)
}
