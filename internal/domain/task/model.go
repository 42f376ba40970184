package task

import (
	"time"

	"volunteer-tracker-go/pkg/civil"
)

type Task struct {
	ID           string     `gorm:"primaryKey"`
	FamilyID     string     `gorm:"not null"`
	SchoolYearID string     `gorm:"not null"`
	UserID       string     `gorm:"not null"`
	CategoryID   string     `gorm:"not null"`
	Hours        float64    `gorm:"not null"`
	Date         civil.Date `gorm:"type:date;not null"`
	Description  *string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}

// Details is a task joined with its category and submitter.
type Details struct {
	Task
	CategoryName     *string
	SubmittedByEmail *string
}

type Input struct {
	Hours       float64
	Date        civil.Date
	CategoryID  string
	Description *string
}
