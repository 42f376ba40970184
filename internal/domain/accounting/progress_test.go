package accounting

import (
	"encoding/json"
	"testing"
)

func TestCalculateHalfwayFamily(t *testing.T) {
	got := Calculate(30, 50, FromFloat(20))

	if got.HoursRemaining != 20 {
		t.Fatalf("expected 20 hours remaining, got %v", got.HoursRemaining)
	}
	if got.ProgressPercentage != 60 {
		t.Fatalf("expected 60%%, got %v", got.ProgressPercentage)
	}
	if got.Penalty != 40000 {
		t.Fatalf("expected penalty 400.00, got %s", got.Penalty)
	}
}

func TestCalculateCompletedFamilyOwesNothing(t *testing.T) {
	got := Calculate(62.5, 50, FromFloat(20))

	if got.HoursRemaining != 0 {
		t.Fatalf("expected 0 hours remaining, got %v", got.HoursRemaining)
	}
	if got.ProgressPercentage != 100 {
		t.Fatalf("expected progress clamped to 100, got %v", got.ProgressPercentage)
	}
	if got.Penalty != 0 {
		t.Fatalf("expected no penalty, got %s", got.Penalty)
	}
}

func TestCalculateNothingLogged(t *testing.T) {
	got := Calculate(0, 50, FromFloat(20))
	if got.ProgressPercentage != 0 || got.HoursRemaining != 50 || got.Penalty != 100000 {
		t.Fatalf("unexpected progress %+v", got)
	}
}

func TestCalculateQuarterHours(t *testing.T) {
	got := Calculate(49.75, 50, FromFloat(20))
	if got.Penalty != 500 {
		t.Fatalf("expected penalty 5.00, got %s", got.Penalty)
	}

	got = Calculate(10, 50, FromFloat(12.34))
	if got.Penalty != 49360 {
		t.Fatalf("expected penalty 493.60, got %s", got.Penalty)
	}
}

func TestCalculateZeroRequirement(t *testing.T) {
	got := Calculate(0, 0, FromFloat(20))
	if got.ProgressPercentage != 100 || got.HoursRemaining != 0 || got.Penalty != 0 {
		t.Fatalf("unexpected progress %+v", got)
	}
}

func TestFromFloatRoundsHalfAwayFromZero(t *testing.T) {
	cases := map[float64]Cents{
		20:     2000,
		0.125:  13,
		-0.125: -13,
		19.999: 2000,
	}
	for input, want := range cases {
		if got := FromFloat(input); got != want {
			t.Fatalf("FromFloat(%v): expected %d, got %d", input, want, got)
		}
	}
}

func TestCentsJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Cents{"penalty": 40000, "credit": -5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(out) != `{"credit":-0.05,"penalty":400.00}` {
		t.Fatalf("unexpected json %s", out)
	}

	var rate Cents
	if err := json.Unmarshal([]byte(`20`), &rate); err != nil || rate != 2000 {
		t.Fatalf("expected 2000 cents, got %d (%v)", rate, err)
	}
	if err := json.Unmarshal([]byte(`"20"`), &rate); err == nil {
		t.Fatalf("expected error for string amount")
	}
}
