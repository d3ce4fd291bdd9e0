package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/config"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long:  "Walk through the finsprint settings and write them to the config file.\nSafe to re-run; existing values are the starting point.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	currency := cfg.General.Currency
	dataDir := cfg.General.DataDir
	seed := cfg.General.SeedSampleData
	themeName := cfg.Appearance.Theme
	remind := joinInts(cfg.General.BillReminderDays)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency symbol").
				Description("Shown in front of every amount.").
				Options(
					huh.NewOption("$  dollar", "$"),
					huh.NewOption("€  euro", "€"),
					huh.NewOption("£  pound", "£"),
					huh.NewOption("¥  yen", "¥"),
				).
				Value(&currency),
			huh.NewConfirm().
				Title("Seed sample data?").
				Description("Populates empty collections on first run so the dashboard isn't blank.").
				Value(&seed),
			huh.NewInput().
				Title("Bill reminder days").
				Description("Comma-separated days before a due date, e.g. 7,3,1.").
				Value(&remind).
				Validate(func(s string) error {
					_, err := parseInts(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions()...).
				Value(&themeName),
			huh.NewInput().
				Title("Data directory").
				Description("Where the record store database lives. Leave blank for the XDG default.").
				Placeholder("~/.local/share/finsprint").
				Value(&dataDir),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled; nothing saved.")
			return nil
		}
		return err
	}

	cfg.General.Currency = currency
	cfg.General.DataDir = strings.TrimSpace(dataDir)
	cfg.General.SeedSampleData = seed
	cfg.Appearance.Theme = themeName
	cfg.General.BillReminderDays, _ = parseInts(remind)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	return nil
}

func themeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		opts = append(opts, huh.NewOption(t.Name, t.Name))
	}
	return opts
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%q is not a non-negative number", strings.TrimSpace(part))
		}
		out = append(out, n)
	}
	return out, nil
}
