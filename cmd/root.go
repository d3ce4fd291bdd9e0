package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/config"
	"github.com/theirongolddev/finsprint/internal/store"
	"github.com/theirongolddev/finsprint/internal/tracker"
)

var (
	flagDataDir string
	flagNoSeed  bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "finsprint",
	Short: "Personal finance and productivity tracker",
	Long:  "Track expenses, tasks with rewards, savings sprints, and bill due dates.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Record store directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "Skip sample data on first run")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openTracker is the shared load path used by all commands: config, record
// store, tracker load with seed-if-empty. The returned cleanup closes the
// store.
func openTracker() (*tracker.Tracker, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file falls back to defaults with a warning.
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
		}
		cfg = config.DefaultConfig()
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("opening record store: %w", err)
	}

	tr := tracker.New(st, tracker.Options{
		Seed: cfg.General.SeedSampleData && !flagNoSeed,
	})

	report, err := tr.Load()
	if err != nil {
		_ = st.Close()
		return nil, cfg, nil, fmt.Errorf("loading collections: %w", err)
	}

	if !flagQuiet {
		for _, key := range report.Reset {
			fmt.Fprintf(os.Stderr, "  Warning: %s collection was unreadable and has been reset\n", key)
		}
		if len(report.Seeded) > 0 {
			fmt.Fprintf(os.Stderr, "  First run: seeded %s with sample data\n",
				strings.Join(report.Seeded, ", "))
		}
	}

	return tr, cfg, func() { _ = st.Close() }, nil
}

// parseDate accepts YYYY-MM-DD dates from flags.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// friendlyErr strips the wrapped sentinel prefix for not-found errors so
// the user sees the reference they typed.
func friendlyErr(err error) error {
	if errors.Is(err, tracker.ErrNotFound) {
		return errors.New(strings.TrimPrefix(err.Error(), "record not found: "))
	}
	return err
}
