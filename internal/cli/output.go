package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kjarman/uscf-history/internal/msa"
)

// OutputFormat specifies the report format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// gamesCSVHeader is the per-game column set. section_name and round are not
// recoverable from the player-specific page and are emitted empty.
var gamesCSVHeader = []string{
	"event_id", "event_name", "section_name", "round", "result", "color",
	"my_rating_pre", "my_rating_post", "opp_id", "opp_name",
	"opp_rating_pre", "opp_rating_post", "location", "event_date(s)",
}

// WriteGamesCSV writes one CSV row per game across all resolved events.
// Events with zero games contribute no rows.
func WriteGamesCSV(w io.Writer, rows []msa.FinalRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(gamesCSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		for _, g := range row.Games {
			record := []string{
				row.EventID, row.EventName, "", "", g.Result, g.Color,
				row.RatingPre, row.RatingPost, g.OpponentID, g.OpponentName,
				g.OpponentPreRating, g.OpponentPostRating, row.Location, row.EventDates,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRatingsCSV writes the date,rating series.
func WriteRatingsCSV(w io.Writer, points []msa.RatingPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "rating"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write([]string{p.Date.Format("2006-01-02"), fmt.Sprintf("%d", p.Rating)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Report is the JSON report envelope
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	PlayerID    string         `json:"player_id,omitempty"`
	EventCount  int            `json:"event_count"`
	GameCount   int            `json:"game_count"`
	Events      []msa.FinalRow `json:"events"`
}

// WriteReport writes the event summary in the specified format
func WriteReport(w io.Writer, rows []msa.FinalRow, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatText:
		return writeText(w, rows)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, rows []msa.FinalRow) error {
	report := Report{
		GeneratedAt: time.Now().UTC(),
		EventCount:  len(rows),
		GameCount:   countGames(rows),
		Events:      rows,
	}
	if len(rows) > 0 {
		report.PlayerID = rows[0].PlayerID
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func writeText(w io.Writer, rows []msa.FinalRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	fmt.Fprintf(w, "%d event(s), %d game(s)\n\n", len(rows), countGames(rows))
	for _, row := range rows {
		fmt.Fprintf(w, "%s  %s (ID %s)\n", row.EndDate, row.EventName, row.EventID)
		if row.Location != "" {
			fmt.Fprintf(w, "  location: %s\n", row.Location)
		}
		if row.EventDates != "" {
			fmt.Fprintf(w, "  dates:    %s\n", row.EventDates)
		}
		if row.Regular.Before != "" || row.Regular.After != "" {
			fmt.Fprintf(w, "  regular:  %s => %s\n", row.Regular.Before, row.Regular.After)
		}
		fmt.Fprintf(w, "  games:    %d\n", len(row.Games))
	}
	return nil
}

func countGames(rows []msa.FinalRow) int {
	total := 0
	for _, row := range rows {
		total += len(row.Games)
	}
	return total
}
