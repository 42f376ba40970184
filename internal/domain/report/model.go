package report

import (
	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/internal/domain/schoolyear"
)

// FamilyHours is one non-archived family's logged hours in a school year.
type FamilyHours struct {
	FamilyID   string
	FamilyName string
	TotalHours float64
	TaskCount  int64
}

type CategoryHours struct {
	CategoryID   string
	CategoryName string
	TotalHours   float64
	TaskCount    int64
}

type FamilyProgress struct {
	FamilyID   string
	FamilyName string
	TaskCount  int64
	Progress   accounting.Progress
}

type ProgressReport struct {
	SchoolYear   schoolyear.SchoolYear
	Families     []FamilyProgress
	Completed    int
	TotalHours   float64
	TotalPenalty accounting.Cents
}

type CategoryReport struct {
	SchoolYear schoolyear.SchoolYear
	Categories []CategoryHours
	TotalHours float64
}
