package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCaseNumber(t *testing.T) {
	assert.Equal(t, "PT-2025-001", FormatCaseNumber(2025, 1))
	assert.Equal(t, "PT-2025-014", FormatCaseNumber(2025, 14))
	assert.Equal(t, "PT-2026-999", FormatCaseNumber(2026, 999))
}

func TestFormatCaseNumber_GrowsPast999(t *testing.T) {
	// sequences beyond 999 widen, they are never truncated
	assert.Equal(t, "PT-2025-1000", FormatCaseNumber(2025, 1000))
	assert.Equal(t, "PT-2025-12345", FormatCaseNumber(2025, 12345))
}

func TestParseCaseNumber_Roundtrip(t *testing.T) {
	for _, seq := range []int{1, 14, 999, 1000} {
		year, parsed, err := ParseCaseNumber(FormatCaseNumber(2025, seq))
		require.NoError(t, err)
		assert.Equal(t, 2025, year)
		assert.Equal(t, seq, parsed)
	}
}

func TestParseCaseNumber_Malformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"PT-2025",
		"XX-2025-001",
		"PT-abcd-001",
		"PT-2025-xyz",
		"PT-2025-000",
		"PT-2025-001-extra",
	} {
		_, _, err := ParseCaseNumber(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}
