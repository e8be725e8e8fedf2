package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kjarman/uscf-history/internal/diag"
	"github.com/kjarman/uscf-history/internal/msa"
	"github.com/kjarman/uscf-history/internal/normalize"
)

// historyRowSelector matches data rows of the tournament-history table. The
// renderer highlights them with one of two sentinel colors; header and
// separator rows use neither.
const historyRowSelector = `tr[bgcolor="FFFFC0"], tr[bgcolor="FFFF80"]`

var eventIDPattern = regexp.MustCompile(`\d{9,12}`)

// Tournaments extracts one EventSummary per data row of a player's
// tournament-history document, in document order. Chronological order is not
// guaranteed by the source; callers needing it must sort on the date field.
// Rows with fewer than five cells are structurally malformed and skipped.
func Tournaments(doc *goquery.Document, reporter diag.Reporter) []msa.EventSummary {
	if reporter == nil {
		reporter = diag.Discard
	}

	events := make([]msa.EventSummary, 0)
	doc.Find(historyRowSelector).Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 5 {
			reporter.Debug("skipping short history row", diag.Fields{"row": i, "cells": cells.Length()})
			return
		}

		// The date cell holds the end date and the event ID in separate
		// elements, so flatten it with element-boundary separation to keep
		// the two tokens apart.
		dateCol := normalize.CollapseWhitespace(flattenedText(cells.Eq(0)))
		endDate := ""
		if parts := strings.Fields(dateCol); len(parts) > 0 {
			endDate = parts[0]
		}

		nameCell := cells.Eq(1)
		crossRef, _ := nameCell.Find("a[href]").First().Attr("href")

		ev := msa.EventSummary{
			EndDate:   endDate,
			EventID:   eventIDPattern.FindString(dateCol),
			EventName: normalize.CollapseWhitespace(nameCell.Text()),
			CrossRef:  crossRef,
		}
		ev.Regular.Before, ev.Regular.After = ratingPairCell(cells.Eq(2))
		ev.Quick.Before, ev.Quick.After = ratingPairCell(cells.Eq(3))
		ev.Blitz.Before, ev.Blitz.After = ratingPairCell(cells.Eq(4))

		events = append(events, ev)
	})
	return events
}

func ratingPairCell(td *goquery.Selection) (before, after string) {
	return normalize.ParseRatingPair(normalize.CollapseWhitespace(td.Text()))
}
