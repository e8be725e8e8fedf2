package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kjarman/uscf-history/internal/diag"
)

// ratingLinePattern matches the player's own rating cell, e.g.
// "R: 1294 ->1451". Both arrow spellings occur in the source.
var ratingLinePattern = regexp.MustCompile(`(?i)R:\s*(\d+)\s*(?:->|=>)\s*(\d+)`)

// PlayerRating scans every signature table of a player-specific sub-document
// for a row whose first cell (after filler suppression) is "rating" and whose
// second cell matches the rating-line pattern. The first match wins, in row
// then table order; the scan stops there. When no row matches, both values
// are empty strings.
func PlayerRating(doc *goquery.Document, reporter diag.Reporter) (pre, post string) {
	if reporter == nil {
		reporter = diag.Discard
	}

	doc.Find(signatureTableSelector).EachWithBreak(func(_ int, table *goquery.Selection) bool {
		found := false
		directRows(table).EachWithBreak(func(_ int, tr *goquery.Selection) bool {
			cols := rowColumns(tr)
			if len(cols) < 2 || strings.ToLower(cols[0]) != "rating" {
				return true
			}
			m := ratingLinePattern.FindStringSubmatch(cols[1])
			if m == nil {
				return true
			}
			pre, post = m[1], m[2]
			found = true
			return false
		})
		return !found
	})

	if pre != "" {
		reporter.Debug("found player rating", diag.Fields{"pre": pre, "post": post})
	}
	return pre, post
}
