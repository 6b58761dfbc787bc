package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotify_EmptyRecipientSkipped(t *testing.T) {
	n := NewSMTPNotifier(nil)
	assert.False(t, n.Notify(KindPlacementApproved, "   ", nil))
}

func TestNotify_LogOnlyWithoutSMTPHost(t *testing.T) {
	// SMTP_HOST is unset in tests, so delivery degrades to log-only
	// and still counts as handled.
	n := NewSMTPNotifier(nil)
	assert.True(t, n.Notify(KindPlacementDenied, "creator@test.local", map[string]any{
		"title":  "Midnight Run",
		"reason": "rights could not be verified",
	}))
}

func TestBuildMessage_KnownKind(t *testing.T) {
	msg := string(buildMessage(KindPlacementApproved, "creator@test.local", map[string]any{
		"case_number": "PT-2025-001",
		"title":       "Midnight Run",
	}))

	assert.Contains(t, msg, "To: creator@test.local\r\n")
	assert.Contains(t, msg, "Subject: Your placement has been approved\r\n")
	// payload lines come out in sorted key order after the blank line
	body := msg[strings.Index(msg, "\r\n\r\n")+4:]
	assert.Equal(t, "case_number: PT-2025-001\r\ntitle: Midnight Run\r\n", body)
}

func TestBuildMessage_UnknownKindFallsBack(t *testing.T) {
	msg := string(buildMessage("something_new", "creator@test.local", nil))
	assert.Contains(t, msg, "Subject: Placement update\r\n")
}
