package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationLog is the best-effort delivery trail. A row is written
// for every dispatch attempt, delivered or not; failures carry the
// error text for operators.
type NotificationLog struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`

	NotificationKind      string         `gorm:"column:notification_kind;type:varchar(50);not null;index" json:"notification_kind"`
	NotificationRecipient string         `gorm:"column:notification_recipient;type:varchar(255);not null" json:"notification_recipient"`
	NotificationPayload   datatypes.JSON `gorm:"column:notification_payload;type:jsonb" json:"notification_payload,omitempty"`

	NotificationDelivered bool   `gorm:"column:notification_delivered;not null;default:false" json:"notification_delivered"`
	NotificationError     string `gorm:"column:notification_error;type:text" json:"notification_error,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationLog) TableName() string {
	return "notification_logs"
}
