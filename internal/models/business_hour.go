package models

import "time"

// BusinessHour is the salon-wide operating window for one weekday.
// DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday.
type BusinessHour struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_salon_weekday" json:"salon_id"`

	DayOfWeek int    `gorm:"uniqueIndex:idx_salon_weekday" json:"day_of_week"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
