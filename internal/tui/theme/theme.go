// Package theme defines color themes for the finsprint dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = MintDark

// MintDark is the default theme - a dark palette with a mint-green accent.
var MintDark = Theme{
	Name:          "mint-dark",
	Background:    lipgloss.Color("#0E1513"),
	Surface:       lipgloss.Color("#1A211E"),
	SurfaceHover:  lipgloss.Color("#242C29"),
	SurfaceBright: lipgloss.Color("#2F3834"),
	Border:        lipgloss.Color("#3A443F"),
	BorderBright:  lipgloss.Color("#525D57"),
	BorderAccent:  lipgloss.Color("#34C08B"),
	TextDim:       lipgloss.Color("#525D57"),
	TextMuted:     lipgloss.Color("#8A958F"),
	TextPrimary:   lipgloss.Color("#ECF4EF"),
	Accent:        lipgloss.Color("#34C08B"),
	AccentBright:  lipgloss.Color("#5CDBA9"),
	AccentDim:     lipgloss.Color("#16312A"),
	Green:         lipgloss.Color("#6BBF59"),
	GreenBright:   lipgloss.Color("#8BDB78"),
	Orange:        lipgloss.Color("#E08F3F"),
	Red:           lipgloss.Color("#E0564F"),
	Blue:          lipgloss.Color("#4E9CD0"),
	BlueBright:    lipgloss.Color("#74B8E4"),
	Yellow:        lipgloss.Color("#D9B13B"),
	Magenta:       lipgloss.Color("#C76BAE"),
	Cyan:          lipgloss.Color("#3AA6A0"),
}

// Nord is a cool arctic theme built on the Nord palette.
var Nord = Theme{
	Name:          "nord",
	Background:    lipgloss.Color("#2E3440"),
	Surface:       lipgloss.Color("#3B4252"),
	SurfaceHover:  lipgloss.Color("#434C5E"),
	SurfaceBright: lipgloss.Color("#4C566A"),
	Border:        lipgloss.Color("#4C566A"),
	BorderBright:  lipgloss.Color("#616E88"),
	BorderAccent:  lipgloss.Color("#88C0D0"),
	TextDim:       lipgloss.Color("#616E88"),
	TextMuted:     lipgloss.Color("#D8DEE9"),
	TextPrimary:   lipgloss.Color("#ECEFF4"),
	Accent:        lipgloss.Color("#88C0D0"),
	AccentBright:  lipgloss.Color("#8FBCBB"),
	AccentDim:     lipgloss.Color("#3B4252"),
	Green:         lipgloss.Color("#A3BE8C"),
	GreenBright:   lipgloss.Color("#B5CEA0"),
	Orange:        lipgloss.Color("#D08770"),
	Red:           lipgloss.Color("#BF616A"),
	Blue:          lipgloss.Color("#81A1C1"),
	BlueBright:    lipgloss.Color("#88C0D0"),
	Yellow:        lipgloss.Color("#EBCB8B"),
	Magenta:       lipgloss.Color("#B48EAD"),
	Cyan:          lipgloss.Color("#8FBCBB"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderBright:  lipgloss.Color("#7F849C"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	AccentDim:     lipgloss.Color("#293147"),
	Green:         lipgloss.Color("#A6E3A1"),
	GreenBright:   lipgloss.Color("#C6F6C1"),
	Orange:        lipgloss.Color("#FAB387"),
	Red:           lipgloss.Color("#F38BA8"),
	Blue:          lipgloss.Color("#89B4FA"),
	BlueBright:    lipgloss.Color("#B4D0FB"),
	Yellow:        lipgloss.Color("#F9E2AF"),
	Magenta:       lipgloss.Color("#F5C2E7"),
	Cyan:          lipgloss.Color("#94E2D5"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{MintDark, Nord, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to MintDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return MintDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
