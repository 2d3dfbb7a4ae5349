package display

import (
	"testing"
)

func TestFormatStat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"whole number", 5, "5"},
		{"one decimal", 2.5, "2.5"},
		{"typical cpu", 80, "80"},
		{"sub-second average", 0.75, "0.75"},
		{"long decimal", 81.25, "81.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatStat(tt.in)
			if got != tt.want {
				t.Errorf("FormatStat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFileCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 day logs"},
		{1, "1 day log"},
		{3, "3 day logs"},
	}
	for _, tt := range tests {
		got := FormatFileCount(tt.n)
		if got != tt.want {
			t.Errorf("FormatFileCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
