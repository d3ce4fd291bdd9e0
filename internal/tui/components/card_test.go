package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 3},
		{97, 4},
		{10, 1},
		{7, 5},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(50, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("mint-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestHorizontalBarsScaleToPeak(t *testing.T) {
	theme.SetActive("terminal")

	out := HorizontalBars([]BarEntry{
		{Label: "Food & Dining", Amount: "$90.00", Value: 90},
		{Label: "Utilities", Amount: "$45.00", Value: 45},
	}, 60)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bar rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Food & Dining") || !strings.Contains(lines[1], "Utilities") {
		t.Error("labels missing from bar rows")
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("larger value should render the longer bar")
	}
}
