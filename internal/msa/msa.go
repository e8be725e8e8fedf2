package msa

import (
	"fmt"
	"regexp"
	"strings"
)

// BaseURL is the fixed origin all discovered relative links resolve against.
const BaseURL = "https://www.uschess.org/msa/"

// TournamentHistoryURL builds the tournament-history page URL for a player.
// The MSA passes the member ID as the bare query string.
func TournamentHistoryURL(base, playerID string) string {
	return base + "MbrDtlTnmtHst.php?" + playerID
}

// RatingPair holds a before/after rating as the MSA renders it. After is
// empty when the source shows a single value with no arrow.
type RatingPair struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// EventSummary is one row of the player's tournament-history table.
type EventSummary struct {
	EndDate   string     `json:"end_date"`
	EventID   string     `json:"event_id"`
	EventName string     `json:"event_name"`
	Regular   RatingPair `json:"regular"`
	Quick     RatingPair `json:"quick"`
	Blitz     RatingPair `json:"blitz"`
	// CrossRef is the relative crosstable link for the event, empty when the
	// history row carries no hyperlink.
	CrossRef string `json:"cross_reference_link,omitempty"`
}

// Well-known CrosstableSummary keys. Labels are lower-cased verbatim from the
// source, so these include its punctuation.
const (
	KeyLocation   = "location"
	KeyEventDates = "event date(s)"
	KeyChiefTD    = "chief td"
)

// CrosstableSummary maps lower-cased label text to normalized value text from
// an event's crosstable metadata table. Unknown labels are retained; a
// partial or empty map is valid.
type CrosstableSummary map[string]string

// Location returns the normalized "CITY, ST" value, or "".
func (s CrosstableSummary) Location() string { return s[KeyLocation] }

// EventDates returns the event date(s) value, or "".
func (s CrosstableSummary) EventDates() string { return s[KeyEventDates] }

// ChiefTD returns the chief tournament director value, or "".
func (s CrosstableSummary) ChiefTD() string { return s[KeyChiefTD] }

// Merge copies every entry of other into s, overwriting on collision.
func (s CrosstableSummary) Merge(other CrosstableSummary) {
	for k, v := range other {
		s[k] = v
	}
}

// GameRecord is one game from a player-specific crosstable section.
type GameRecord struct {
	// Result is a single letter: W, L, D, or H (bye / half-point bye).
	Result             string `json:"result"`
	Color              string `json:"color"`
	OpponentScore      string `json:"opponent_score"`
	OpponentPreRating  string `json:"opponent_rating_pre"`
	OpponentPostRating string `json:"opponent_rating_post"`
	OpponentName       string `json:"opponent_name"`
	// OpponentID is the numeric ID embedded in the name cell, empty when the
	// source omits it.
	OpponentID string `json:"opponent_id,omitempty"`
}

// PlayerPageResult is everything extracted from one player-specific
// sub-document. Ratings are empty strings when not parseable.
type PlayerPageResult struct {
	PreRating  string       `json:"pre_rating"`
	PostRating string       `json:"post_rating"`
	Games      []GameRecord `json:"games"`
}

// FinalRow is the resolved output for one event: the history row joined with
// the crosstable metadata and the player's games. One FinalRow exists per
// event regardless of game count.
type FinalRow struct {
	PlayerID string `json:"player_id"`
	EventSummary
	Location   string       `json:"location,omitempty"`
	EventDates string       `json:"event_dates,omitempty"`
	ChiefTD    string       `json:"chief_td,omitempty"`
	RatingPre  string       `json:"rating_pre,omitempty"`
	RatingPost string       `json:"rating_post,omitempty"`
	Games      []GameRecord `json:"games,omitempty"`
}

var allSectionsPattern = regexp.MustCompile(`XtblMain\.php\?(\d+)-(\d+)`)

// AllSectionsVariant derives the "all sections" form of a crosstable link by
// substituting the .0 section marker, e.g. "XtblMain.php?202301159992-12345678"
// becomes "XtblMain.php?202301159992.0-12345678". The second return is false
// when the link does not match the crosstable pattern.
func AllSectionsVariant(link string) (string, bool) {
	m := allSectionsPattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("XtblMain.php?%s.0-%s", m[1], m[2]), true
}

// IsPlayerLink reports whether href points at the player-specific crosstable
// section for the given member ID.
func IsPlayerLink(href, playerID string) bool {
	return strings.Contains(href, "XtblPlr.php?") && strings.Contains(href, playerID)
}
