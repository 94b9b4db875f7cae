package billing

import (
	"testing"
	"time"
)

func TestMonthCounting(t *testing.T) {
	cases := []struct {
		name          string
		start, end    time.Time
		wantSpanned   int
		wantInclusive int
	}{
		{"inside one month", Date(2024, time.March, 5), Date(2024, time.March, 20), 1, 1},
		{"adjacent months", Date(2024, time.January, 15), Date(2024, time.February, 15), 1, 2},
		{"full calendar year", Date(2024, time.January, 1), Date(2024, time.December, 31), 11, 12},
		{"across year boundary", Date(2023, time.November, 1), Date(2024, time.February, 1), 3, 4},
		{"same day", Date(2024, time.June, 1), Date(2024, time.June, 1), 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsSpanned(tc.start, tc.end); got != tc.wantSpanned {
				t.Errorf("MonthsSpanned = %d, want %d", got, tc.wantSpanned)
			}
			if got := MonthsInclusive(tc.start, tc.end); got != tc.wantInclusive {
				t.Errorf("MonthsInclusive = %d, want %d", got, tc.wantInclusive)
			}
		})
	}
}

func TestPeriodValidate(t *testing.T) {
	ok := Period{Start: Date(2024, time.January, 1), End: Date(2024, time.December, 31)}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	single := Period{Start: Date(2024, time.June, 1), End: Date(2024, time.June, 1)}
	if err := single.Validate(); err != nil {
		t.Errorf("single-day Validate() = %v, want nil", err)
	}

	inverted := Period{Start: Date(2024, time.June, 2), End: Date(2024, time.June, 1)}
	if err := inverted.Validate(); err == nil {
		t.Error("inverted Validate() = nil, want error")
	}
}
