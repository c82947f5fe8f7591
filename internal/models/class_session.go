package models

import (
	"time"

	"gorm.io/gorm"
)

type ClassSession struct {
	gorm.Model
	Title     string    `gorm:"not null" json:"title"`
	StartTime time.Time `gorm:"index;not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`
	Location  string    `gorm:"not null" json:"location"`
	// Day is the weekday bucket the overlap check groups by. Clients send it
	// explicitly so a server/client timezone mismatch cannot shift it.
	Day      string `gorm:"index;not null" json:"day"`
	Teacher  string `gorm:"default:Sir" json:"teacher"`
	Type     string `gorm:"default:Theory" json:"type"`
	Category string `gorm:"default:EXTERNAL" json:"category"`
	Medium   string `gorm:"default:English" json:"medium"`
	// ClassNumber is parsed from the title when not supplied.
	ClassNumber *int `json:"classNumber,omitempty"`
	// NotificationSent is the one-way latch set by the reminder sweep.
	NotificationSent bool `gorm:"default:false" json:"notificationSent"`
}
