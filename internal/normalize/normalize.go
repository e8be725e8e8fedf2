package normalize

import (
	"regexp"
	"strings"
)

var (
	locationPattern   = regexp.MustCompile(`^(.+,\s*\w\w)\b`)
	embeddedIDPattern = regexp.MustCompile(`^(.*)\((\d+)\)\s*$`)
	ratingPrefix      = regexp.MustCompile(`(?i)^R:\s*`)
	datePattern       = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
)

// CollapseWhitespace flattens non-breaking spaces and whitespace runs to
// single spaces and trims the result.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseRatingPair splits "1294 =>1451" into ("1294", "1451"). Text without
// the arrow token yields an empty after value.
func ParseRatingPair(s string) (before, after string) {
	if left, right, ok := strings.Cut(s, "=>"); ok {
		return strings.TrimSpace(left), strings.TrimSpace(right)
	}
	return strings.TrimSpace(s), ""
}

// FixLocation truncates trailing content after the "CITY, ST" prefix, so
// "LAS VEGAS, NV  89103" becomes "LAS VEGAS, NV". Text without a comma and
// two-letter code is returned whitespace-collapsed but otherwise unchanged.
func FixLocation(s string) string {
	s = CollapseWhitespace(s)
	if m := locationPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// ExtractEmbeddedID splits "MARK E FRASER (12476390)" into the name and the
// parenthesized digits. When no trailing ID is present the original text is
// returned with an empty ID.
func ExtractEmbeddedID(s string) (name, id string) {
	if m := embeddedIDPattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return s, ""
}

// StripRatingPrefix removes a leading case-insensitive "R:" token and any
// space after it.
func StripRatingPrefix(s string) string {
	return ratingPrefix.ReplaceAllString(s, "")
}

// DatePrefix returns the leading YYYY-MM-DD token, or the input unchanged
// when none is present.
func DatePrefix(s string) string {
	if m := datePattern.FindString(s); m != "" {
		return m
	}
	return s
}
