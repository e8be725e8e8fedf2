package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kjarman/uscf-history/internal/diag"
	"github.com/kjarman/uscf-history/internal/msa"
	"github.com/kjarman/uscf-history/internal/normalize"
)

// gameColumnCount is the shape gate: after filler suppression a game row has
// exactly six text columns. No structural attribute distinguishes game rows
// from decorative ones, so the column count and result pattern do the work.
const gameColumnCount = 6

// resultPattern matches the first column of a game row: a W/L/D/H code
// optionally followed by the round number.
var resultPattern = regexp.MustCompile(`(?i)^([WLDH])\s*\d*$`)

var gamesHeading = regexp.MustCompile(`(?i)games`)

// PlayerPage extracts the player's own pre/post ratings and game records from
// a player-specific sub-document, applying the two-pass games strategy: the
// outer "Games" table first, then every table nested inside it if the first
// pass yields nothing. Zero games after both passes is a valid result (the
// player may have withdrawn before round one) and is reported as a
// diagnostic only.
func PlayerPage(doc *goquery.Document, reporter diag.Reporter) msa.PlayerPageResult {
	if reporter == nil {
		reporter = diag.Discard
	}

	res := msa.PlayerPageResult{Games: []msa.GameRecord{}}
	res.PreRating, res.PostRating = PlayerRating(doc, reporter)

	gamesTable := findGamesTable(doc)
	if gamesTable == nil {
		reporter.Debug("no games table found", nil)
		return res
	}

	if games := Games(gamesTable, "pass1", reporter); len(games) > 0 {
		res.Games = games
		return res
	}

	reporter.Debug("first pass found no games, scanning nested tables", nil)
	gamesTable.Find("table").Each(func(i int, sub *goquery.Selection) {
		res.Games = append(res.Games, Games(sub, fmt.Sprintf("pass2(nested=%d)", i), reporter)...)
	})

	if len(res.Games) == 0 {
		reporter.Warn("no games found after both extraction passes", nil)
	}
	return res
}

// Games extracts game records from the direct child rows of one table scope.
// Rows of nested tables are left for the caller's second pass, so the two
// passes never double-count. passLabel is used purely for diagnostics. Rows
// failing the shape gate or the result pattern are skipped silently.
func Games(table *goquery.Selection, passLabel string, reporter diag.Reporter) []msa.GameRecord {
	if reporter == nil {
		reporter = diag.Discard
	}

	rows := directRows(table)
	reporter.Debug("scanning games table", diag.Fields{"pass": passLabel, "rows": rows.Length()})

	var games []msa.GameRecord
	rows.Each(func(i int, tr *goquery.Selection) {
		game, ok := gameFromColumns(rowColumns(tr))
		if !ok {
			return
		}
		reporter.Debug("found game", diag.Fields{
			"pass":     passLabel,
			"row":      i,
			"result":   game.Result,
			"opponent": game.OpponentName,
		})
		games = append(games, game)
	})
	return games
}

// gameFromColumns applies the shape gate and maps the six columns of a game
// row to a record.
func gameFromColumns(cols []string) (msa.GameRecord, bool) {
	if len(cols) != gameColumnCount {
		return msa.GameRecord{}, false
	}
	m := resultPattern.FindStringSubmatch(cols[0])
	if m == nil {
		return msa.GameRecord{}, false
	}

	name, id := normalize.ExtractEmbeddedID(cols[5])
	return msa.GameRecord{
		Result:             strings.ToUpper(m[1]),
		Color:              cols[1],
		OpponentScore:      cols[2],
		OpponentPreRating:  normalize.StripRatingPrefix(cols[3]),
		OpponentPostRating: normalize.StripRatingPrefix(cols[4]),
		OpponentName:       name,
		OpponentID:         id,
	}, true
}

// findGamesTable locates the outermost table containing a bold "Games"
// heading, or nil when the document has none.
func findGamesTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		match := false
		table.Find("b").EachWithBreak(func(_ int, b *goquery.Selection) bool {
			if gamesHeading.MatchString(b.Text()) {
				match = true
				return false
			}
			return true
		})
		if match {
			found = table
			return false
		}
		return true
	})
	return found
}
