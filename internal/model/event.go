package model

import "time"

// EventStatus 活動審核狀態
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusApproved  EventStatus = "approved"
	EventStatusDeclined  EventStatus = "declined"
	EventStatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusDeclined, EventStatusCancelled:
		return true
	}
	return false
}

// Event 活動模型；Date 為 YYYY-MM-DD，Time 為 HH:MM:SS
type Event struct {
	ID              int         `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Description     *string     `json:"description" db:"description"`
	Date            string      `json:"date" db:"date"`
	Time            string      `json:"time" db:"time"`
	Location        *string     `json:"location" db:"location"`
	Capacity        *int        `json:"capacity" db:"capacity"`
	OrganizerID     *int        `json:"organizer_id" db:"organizer_id"`
	Status          EventStatus `json:"status" db:"status"`
	RegisteredCount int         `json:"registered_count" db:"registered_count"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}
