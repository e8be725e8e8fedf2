package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestCrosstable(t *testing.T) {
	doc := loadFixture(t, "crosstable.html")

	summary := Crosstable(doc)
	if got := summary.Location(); got != "LAS VEGAS, NV" {
		t.Errorf("expected normalized location, got %q", got)
	}
	if got := summary.EventDates(); got != "2023-01-14 thru 2023-01-15" {
		t.Errorf("unexpected event dates %q", got)
	}
	if got := summary.ChiefTD(); got != "JANE ARBITER" {
		t.Errorf("unexpected chief td %q", got)
	}
	// Unknown labels are retained, not filtered through an allow-list
	if got := summary["sponsoring affiliate"]; got != "NEVADA CHESS INC" {
		t.Errorf("expected unknown label retained, got %q", got)
	}
}

func TestCrosstableWidth800Variant(t *testing.T) {
	html := `<html><body>
<table bgcolor=FFFFFF width=800>
<tr><td>Location</td><td>SAINT LOUIS, MO 63103</td></tr>
</table>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	summary := Crosstable(doc)
	if got := summary.Location(); got != "SAINT LOUIS, MO" {
		t.Errorf("expected width=800 table to be accepted, got location %q", got)
	}
}

func TestCrosstablePrefersCanonicalWidth(t *testing.T) {
	// A width=800 table earlier in the document must not shadow the
	// canonical width=750 table.
	html := `<html><body>
<table bgcolor=FFFFFF width=800>
<tr><td>Location</td><td>WRONG CITY, TX</td></tr>
</table>
<table bgcolor=FFFFFF width=750>
<tr><td>Location</td><td>LAS VEGAS, NV 89103</td></tr>
</table>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	summary := Crosstable(doc)
	if got := summary.Location(); got != "LAS VEGAS, NV" {
		t.Errorf("expected width=750 table to win, got location %q", got)
	}
}

func TestCrosstableMissingMainTable(t *testing.T) {
	html := `<html><body><table width=100><tr><td>Location</td><td>NOWHERE, KS</td></tr></table></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	summary := Crosstable(doc)
	if len(summary) != 0 {
		t.Errorf("expected empty summary for missing main table, got %v", summary)
	}
}
