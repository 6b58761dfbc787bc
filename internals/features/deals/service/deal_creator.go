// file: internals/features/deals/service/deal_creator.go
package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dealModel "placementtrack_backend/internals/features/deals/model"
	placementModel "placementtrack_backend/internals/features/placements/model"
)

// CreditSplitSnapshot is one row of the splits frozen onto the deal.
type CreditSplitSnapshot struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	SplitPercent   float64 `json:"split_percent"`
	ProAffiliation string  `json:"pro_affiliation,omitempty"`
	Linked         bool    `json:"linked"`
}

// BuildDeal is the pure construction step: no persistence, no side
// effects. The primary writer is the credit flagged primary, falling
// back to the submission owner's display name; everyone else lands in
// the comma-joined co-writer list. Both royalty clearance fields start
// at the collecting sentinel.
func BuildDeal(
	sub *placementModel.PlacementSubmission,
	credits []placementModel.PlacementCredit,
	ownerName string,
	createdBy uuid.UUID,
	adminNotes string,
) (*dealModel.Deal, error) {
	if sub.SubmissionCaseNumber == nil || *sub.SubmissionCaseNumber == "" {
		return nil, fmt.Errorf("submission %s has no case number", sub.SubmissionID)
	}
	caseNumber := *sub.SubmissionCaseNumber

	primary := ownerName
	var coWriters []string
	for i := range credits {
		cr := &credits[i]
		if cr.CreditIsPrimary && primary == ownerName {
			primary = cr.FullName()
			continue
		}
		coWriters = append(coWriters, cr.FullName())
	}

	snapshots := make([]CreditSplitSnapshot, 0, len(credits))
	for i := range credits {
		cr := &credits[i]
		snapshots = append(snapshots, CreditSplitSnapshot{
			Name:           cr.FullName(),
			Role:           cr.CreditRole,
			SplitPercent:   cr.CreditSplitPercent,
			ProAffiliation: cr.CreditProAffiliation,
			Linked:         cr.IsLinked(),
		})
	}
	splitsJSON, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("marshal splits snapshot: %w", err)
	}

	notes := fmt.Sprintf("Created from placement case %s.", caseNumber)
	if strings.TrimSpace(adminNotes) != "" {
		notes += " " + strings.TrimSpace(adminNotes)
	}

	return &dealModel.Deal{
		DealCaseNumber:        caseNumber,
		DealTitle:             sub.SubmissionTitle,
		DealArtist:            sub.SubmissionArtist,
		DealAlbum:             sub.SubmissionAlbum,
		DealISRC:              sub.SubmissionISRC,
		DealGenre:             sub.SubmissionGenre,
		DealLabel:             sub.SubmissionLabel,
		DealPrimaryWriter:     primary,
		DealCoWriters:         strings.Join(coWriters, ", "),
		DealPerformanceStatus: dealModel.ClearanceCollecting,
		DealMechanicalStatus:  dealModel.ClearanceCollecting,
		DealSplits:            datatypes.JSON(splitsJSON),
		DealCreatedBy:         createdBy,
		DealNotes:             notes,
	}, nil
}
