package accounting

import "math"

type Progress struct {
	TotalHours         float64 `json:"totalHours"`
	RequiredHours      int     `json:"requiredHours"`
	HoursRemaining     float64 `json:"hoursRemaining"`
	ProgressPercentage float64 `json:"progressPercentage"`
	Penalty            Cents   `json:"penalty"`
}

// Calculate derives the dashboard figures for a family in one school year.
// The penalty is what the family owes for hours it has not yet volunteered.
func Calculate(totalHours float64, requiredHours int, hourlyRate Cents) Progress {
	required := float64(requiredHours)
	remaining := math.Max(0, required-totalHours)

	percentage := 100.0
	if requiredHours > 0 {
		percentage = math.Min(100, math.Max(0, totalHours/required*100))
	}

	return Progress{
		TotalHours:         totalHours,
		RequiredHours:      requiredHours,
		HoursRemaining:     remaining,
		ProgressPercentage: percentage,
		Penalty:            Cents(math.Round(remaining * float64(hourlyRate))),
	}
}
