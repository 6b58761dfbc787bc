// file: internals/features/notifications/service/dispatcher.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"sort"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"placementtrack_backend/internals/configs"
	"placementtrack_backend/internals/features/notifications/model"
)

// Notification kinds dispatched by the placement workflow.
const (
	KindPlacementApproved    = "placement_approved"
	KindPlacementDenied      = "placement_denied"
	KindDocumentsRequested   = "documents_requested"
	KindPlacementResubmitted = "placement_resubmitted"
)

// Notifier is the best-effort delivery contract. Notify never returns
// an error: the bool is for logging only and a failed delivery must
// never undo the transition that triggered it.
type Notifier interface {
	Notify(kind, recipient string, payload map[string]any) bool
}

// SMTPNotifier delivers plain-text mail over SMTP and records every
// attempt in notification_logs. With no SMTP_HOST configured it
// degrades to log-only (useful locally).
type SMTPNotifier struct {
	DB *gorm.DB
}

func NewSMTPNotifier(db *gorm.DB) *SMTPNotifier {
	return &SMTPNotifier{DB: db}
}

func (n *SMTPNotifier) Notify(kind, recipient string, payload map[string]any) bool {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		log.Printf("[NOTIFY] %s skipped: empty recipient", kind)
		return false
	}

	var sendErr error
	if configs.SMTPHost == "" {
		log.Printf("[NOTIFY] %s → %s (log-only, SMTP not configured)", kind, recipient)
	} else {
		sendErr = n.send(kind, recipient, payload)
		if sendErr != nil {
			log.Printf("[NOTIFY] %s → %s failed: %v", kind, recipient, sendErr)
		}
	}

	n.record(kind, recipient, payload, sendErr)
	return sendErr == nil
}

func (n *SMTPNotifier) send(kind, recipient string, payload map[string]any) error {
	addr := configs.SMTPHost + ":" + configs.SMTPPort

	var auth smtp.Auth
	if configs.SMTPUser != "" {
		auth = smtp.PlainAuth("", configs.SMTPUser, configs.SMTPPassword, configs.SMTPHost)
	}

	msg := buildMessage(kind, recipient, payload)
	return smtp.SendMail(addr, auth, configs.SMTPSender, []string{recipient}, msg)
}

func (n *SMTPNotifier) record(kind, recipient string, payload map[string]any, sendErr error) {
	if n.DB == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte("{}")
	}
	row := model.NotificationLog{
		NotificationKind:      kind,
		NotificationRecipient: recipient,
		NotificationPayload:   datatypes.JSON(body),
		NotificationDelivered: sendErr == nil,
	}
	if sendErr != nil {
		row.NotificationError = sendErr.Error()
	}
	if err := n.DB.Create(&row).Error; err != nil {
		// the log row itself is best-effort too
		log.Printf("[NOTIFY] failed to record %s → %s: %v", kind, recipient, err)
	}
}

var kindSubjects = map[string]string{
	KindPlacementApproved:    "Your placement has been approved",
	KindPlacementDenied:      "Your placement was denied",
	KindDocumentsRequested:   "Additional documents requested for your placement",
	KindPlacementResubmitted: "Placement resubmitted for review",
}

func buildMessage(kind, recipient string, payload map[string]any) []byte {
	subject, ok := kindSubjects[kind]
	if !ok {
		subject = "Placement update"
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", configs.SMTPSender)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\r\n", k, payload[k])
	}
	return []byte(b.String())
}
