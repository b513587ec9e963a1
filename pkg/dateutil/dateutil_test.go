package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestFirstOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "mid month",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already the first",
			input:    time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FirstOfMonth(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("FirstOfMonth(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLastOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Time
		wantDay int
	}{
		{
			name:    "31-day month",
			input:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			wantDay: 31,
		},
		{
			name:    "30-day month",
			input:   time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			wantDay: 30,
		},
		{
			name:    "February non-leap",
			input:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 28,
		},
		{
			name:    "February leap year",
			input:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 29,
		},
		{
			name:    "December stays in year",
			input:   time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
			wantDay: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LastOfMonth(tt.input)

			if result.Day() != tt.wantDay {
				t.Errorf("LastOfMonth(%v) = %v, want day %d", tt.input, result, tt.wantDay)
			}
			if result.Month() != tt.input.Month() || result.Year() != tt.input.Year() {
				t.Errorf("LastOfMonth(%v) left the month: %v", tt.input, result)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	input := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	if got := DaysInMonth(input); got != 28 {
		t.Errorf("DaysInMonth(%v) = %d, want 28", input, got)
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name     string
		date1    time.Time
		date2    time.Time
		expected bool
	}{
		{
			name:     "same day different times",
			date1:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
			date2:    time.Date(2025, 1, 15, 18, 30, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "different days",
			date1:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			date2:    time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "same day different years",
			date1:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			date2:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameDay(tt.date1, tt.date2); got != tt.expected {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v", tt.date1, tt.date2, got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "ISO date",
			input:    "2022-10-03",
			expected: time.Date(2022, 10, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dotted date",
			input:    "03.10.2022",
			expected: time.Date(2022, 10, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "datetime truncates to start of day",
			input:    "2022-10-03T14:30:00",
			expected: time.Date(2022, 10, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "out of range day",
			input:   "2022-02-30",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, result)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
