package msa

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/kjarman/uscf-history/internal/normalize"
)

// RatingPoint is one sample of the player's regular rating over time.
type RatingPoint struct {
	Date   time.Time `json:"date"`
	Rating int       `json:"rating"`
}

var nonDigits = regexp.MustCompile(`[^0-9]+`)

// RatingHistory builds the date/rating series from resolved rows, sorted by
// date. Rows whose end date is not a parseable YYYY-MM-DD prefix, or whose
// post-event regular rating has no numeric content, are omitted rather than
// guessed at.
func RatingHistory(rows []FinalRow) []RatingPoint {
	points := make([]RatingPoint, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", normalize.DatePrefix(row.EndDate))
		if err != nil {
			continue
		}
		digits := nonDigits.ReplaceAllString(row.Regular.After, "")
		if digits == "" {
			continue
		}
		rating, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		points = append(points, RatingPoint{Date: date, Rating: rating})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
