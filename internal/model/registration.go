package model

import "time"

// RegistrationStatus 報名狀態
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed, RegistrationStatusCancelled:
		return true
	}
	return false
}

// Registration 報名模型，EventTitle 於查詢時由 events 表 join 而來
type Registration struct {
	ID              int                `json:"id" db:"id"`
	EventID         int                `json:"event_id" db:"event_id"`
	EventTitle      string             `json:"event_title,omitempty" db:"event_title"`
	ParticipantName string             `json:"participant_name" db:"participant_name"`
	Email           string             `json:"email" db:"email"`
	Phone           *string            `json:"phone" db:"phone"`
	Organization    *string            `json:"organization" db:"organization"`
	StudentID       *string            `json:"student_id" db:"student_id"`
	Status          RegistrationStatus `json:"status" db:"status"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
}

// RegistrationInput 建立或更新報名的輸入；EventID 為空時以 EventTitle 查找活動
type RegistrationInput struct {
	EventID         *int
	EventTitle      *string
	ParticipantName string
	Email           string
	Phone           *string
	Organization    *string
	StudentID       *string
	Status          RegistrationStatus
}
