package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kjarman/uscf-history/internal/diag"
	"github.com/kjarman/uscf-history/internal/fetch"
	"github.com/kjarman/uscf-history/internal/msa"
	"github.com/kjarman/uscf-history/internal/traverse"
	"github.com/spf13/cobra"
)

var (
	flagPlayer     string
	flagYear       string
	flagTimeout    time.Duration
	flagMaxRetries int
	flagDelay      time.Duration
	flagOut        string
	flagRatingsOut string
	flagFormat     string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uscf-history",
		Short: "Export a USCF member's tournament and game history",
		Long: `Walks a USCF member's MSA tournament history, follows each event's
crosstable, and extracts per-game records into a CSV file. Also reports an
event summary and an optional rating-over-time series.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagPlayer, "player", "", "USCF member ID (required)")
	cmd.Flags().StringVar(&flagYear, "year", "", "Only include events whose end date starts with this prefix (e.g. 2023)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", fetch.DefaultTimeout, "Per-attempt fetch timeout")
	cmd.Flags().IntVar(&flagMaxRetries, "max-retries", fetch.DefaultMaxRetries, "Fetch attempts per URL")
	cmd.Flags().DurationVar(&flagDelay, "delay", fetch.DefaultDelay, "Fixed pause before each fetch attempt")
	cmd.Flags().StringVar(&flagOut, "out", "", "Games CSV path (default uscf_games_<player>_<timestamp>.csv)")
	cmd.Flags().StringVar(&flagRatingsOut, "ratings-out", "", "Also write a date,rating CSV to this path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Report format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug diagnostics")

	cmd.MarkFlagRequired("player")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	playerID := strings.TrimSpace(flagPlayer)
	if playerID == "" {
		return fmt.Errorf("--player is required")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level := diag.LevelInfo
	if flagVerbose {
		level = diag.LevelDebug
	}
	reporter := diag.New(level, os.Stderr)

	fetcher := fetch.New(flagTimeout, flagDelay, flagMaxRetries, reporter)
	rows, err := traverse.New(fetcher, reporter).Run(cmd.Context(), playerID, flagYear)
	if err != nil {
		return fmt.Errorf("traversing history: %w", err)
	}

	outPath := flagOut
	if outPath == "" {
		outPath = fmt.Sprintf("uscf_games_%s_%d.csv", playerID, time.Now().Unix())
	}
	if err := writeFile(outPath, func(f *os.File) error {
		return WriteGamesCSV(f, rows)
	}); err != nil {
		return fmt.Errorf("writing games CSV: %w", err)
	}
	reporter.Info("wrote games CSV", diag.Fields{"path": outPath})

	if flagRatingsOut != "" {
		points := msa.RatingHistory(rows)
		if err := writeFile(flagRatingsOut, func(f *os.File) error {
			return WriteRatingsCSV(f, points)
		}); err != nil {
			return fmt.Errorf("writing ratings CSV: %w", err)
		}
		reporter.Info("wrote ratings CSV", diag.Fields{"path": flagRatingsOut, "points": len(points)})
	}

	return WriteReport(os.Stdout, rows, format)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
