package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q).Name = %q", th.Name, got.Name)
		}
	}

	if got := ByName("no-such-theme"); got.Name != MintDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got.Name, MintDark.Name)
	}
}

func TestThemeNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range All {
		if seen[th.Name] {
			t.Errorf("duplicate theme name %q", th.Name)
		}
		seen[th.Name] = true
	}
}
