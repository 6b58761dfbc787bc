// file: internals/features/placements/service/case_number.go
package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Case numbers look like PT-2025-001: year-scoped, zero-padded to at
// least 3 digits, strictly increasing within the year. The field grows
// to 4+ digits past 999, it is never truncated.
const CaseNumberPrefix = "PT"

func FormatCaseNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", CaseNumberPrefix, year, seq)
}

// ParseCaseNumber splits PT-{year}-{seq} back into its parts.
func ParseCaseNumber(caseNumber string) (year, seq int, err error) {
	parts := strings.Split(caseNumber, "-")
	if len(parts) != 3 || parts[0] != CaseNumberPrefix {
		return 0, 0, fmt.Errorf("malformed case number %q", caseNumber)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed case number %q: %w", caseNumber, err)
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil || seq < 1 {
		return 0, 0, fmt.Errorf("malformed case number %q", caseNumber)
	}
	return year, seq, nil
}

// AllocateCaseNumber increments the per-year counter row and returns
// the formatted case number. The single-statement upsert takes a row
// lock held until the surrounding transaction commits, so concurrent
// approvals in the same year serialize here and can never observe the
// same sequence value. Must run inside the approval transaction.
func AllocateCaseNumber(tx *gorm.DB, year int) (string, error) {
	var seq int
	err := tx.Raw(`
		INSERT INTO placement_case_counters (case_counter_year, case_counter_last_seq)
		VALUES (?, 1)
		ON CONFLICT (case_counter_year)
		DO UPDATE SET case_counter_last_seq = placement_case_counters.case_counter_last_seq + 1
		RETURNING case_counter_last_seq`, year).
		Scan(&seq).Error
	if err != nil {
		return "", fmt.Errorf("case number allocation for %d failed: %w", year, err)
	}
	if seq < 1 {
		return "", fmt.Errorf("case number allocation for %d returned no sequence", year)
	}
	return FormatCaseNumber(year, seq), nil
}
