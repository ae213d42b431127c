package model

// EventReport 每個活動的報名統計
type EventReport struct {
	ID                 int    `json:"id"`
	Title              string `json:"title"`
	Date               string `json:"date"`
	TotalRegistrations int    `json:"total_registrations"`
	ConfirmedAttendees int    `json:"confirmed_attendees"`
}

type EventStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
}

type RegistrationStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
}

type NotificationStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}

type ResourceStats struct {
	Total             int `json:"total"`
	TotalQuantity     int `json:"total_quantity"`
	AvailableQuantity int `json:"available_quantity"`
}

// DashboardStats 儀表板統計，四組數字各自獨立查詢
type DashboardStats struct {
	Events        EventStats        `json:"events"`
	Registrations RegistrationStats `json:"registrations"`
	Notifications NotificationStats `json:"notifications"`
	Resources     ResourceStats     `json:"resources"`
}
