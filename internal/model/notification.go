package model

import "time"

// NotificationStatus 通知審核狀態
type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusApproved NotificationStatus = "approved"
	NotificationStatusDeclined NotificationStatus = "declined"
)

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusApproved, NotificationStatusDeclined:
		return true
	}
	return false
}

type Notification struct {
	ID        int                `json:"id" db:"id"`
	EventID   int                `json:"event_id" db:"event_id"`
	Message   string             `json:"message" db:"message"`
	Status    NotificationStatus `json:"status" db:"status"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}
