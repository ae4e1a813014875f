package models

import "time"

// HolidayException overrides the weekday BusinessHour verdict for one
// calendar date. It carries no hours of its own: a date forced open uses
// the weekday rule's configured window.
type HolidayException struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_salon_date" json:"salon_id"`

	Date         string `gorm:"size:10;uniqueIndex:idx_salon_date" json:"date"` // YYYY-MM-DD
	IsWorkingDay bool   `json:"is_working_day"`
	Description  string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
