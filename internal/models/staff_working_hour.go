package models

import "time"

// StaffWorkingHour is one staff member's window for one weekday.
// A missing row for a (staff, weekday) pair means not working that day.
type StaffWorkingHour struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"uniqueIndex:idx_staff_weekday" json:"staff_id"`

	DayOfWeek int    `gorm:"uniqueIndex:idx_staff_weekday" json:"day_of_week"`
	IsWorking bool   `json:"is_working"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
