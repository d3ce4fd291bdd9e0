package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in       string
		currency string
		want     string
	}{
		{"0", "$", "$0.00"},
		{"5.4", "$", "$5.40"},
		{"1234.5", "$", "$1,234.50"},
		{"1000000", "$", "$1,000,000.00"},
		{"-42.75", "€", "-€42.75"},
		{"999.999", "$", "$1,000.00"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), tt.currency)
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDueIn(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{5, "in 5d"},
		{1, "tomorrow"},
		{0, "today"},
		{-1, "1d overdue"},
		{-7, "7d overdue"},
	}
	for _, tt := range tests {
		if got := FormatDueIn(tt.days); got != tt.want {
			t.Errorf("FormatDueIn(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{125, "2m"},
		{3600, "1h 0m"},
		{3725, "1h 2m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.secs); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a longer description", 10); got != "a longer …" {
		t.Errorf("Truncate long = %q", got)
	}
}
