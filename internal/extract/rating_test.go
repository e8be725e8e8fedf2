package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestPlayerRatingArrowVariants(t *testing.T) {
	tests := []struct {
		name string
		cell string
		pre  string
		post string
	}{
		{"hyphen arrow", "R: 1294 -&gt;1451", "1294", "1451"},
		{"double arrow", "R: 1294 =&gt;1451", "1294", "1451"},
		{"lowercase prefix", "r: 800 -&gt; 825", "800", "825"},
		{"no arrow", "R: 1294", "", ""},
		{"unparseable", "unrated", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, `<html><body>
<table bgcolor=FFFFFF width=750>
<tr><td width=1 rowspan=20></td><td>Rating</td><td>`+tt.cell+`</td></tr>
</table>
</body></html>`)
			pre, post := PlayerRating(doc, nil)
			if pre != tt.pre || post != tt.post {
				t.Errorf("PlayerRating = (%q, %q), expected (%q, %q)", pre, post, tt.pre, tt.post)
			}
		})
	}
}

func TestPlayerRatingFirstMatchWins(t *testing.T) {
	doc := parseHTML(t, `<html><body>
<table bgcolor=FFFFFF width=750>
<tr><td>Score</td><td>2.0</td></tr>
</table>
<table bgcolor=FFFFFF width=750>
<tr><td>Rating</td><td>R: 1000 -&gt;1010</td></tr>
<tr><td>Rating</td><td>R: 2000 -&gt;2010</td></tr>
</table>
<table bgcolor=FFFFFF width=750>
<tr><td>Rating</td><td>R: 3000 -&gt;3010</td></tr>
</table>
</body></html>`)

	pre, post := PlayerRating(doc, nil)
	if pre != "1000" || post != "1010" {
		t.Errorf("expected first match (1000, 1010), got (%q, %q)", pre, post)
	}
}

func TestPlayerRatingIgnoresNestedTableRows(t *testing.T) {
	// The rating row of a nested table belongs to the nested table's scan,
	// not the outer table's.
	doc := parseHTML(t, `<html><body>
<table bgcolor=FFFFFF width=750>
<tr><td>
  <table>
  <tr><td>Rating</td><td>R: 1500 -&gt;1510</td></tr>
  </table>
</td></tr>
<tr><td>Rating</td><td>R: 1600 -&gt;1610</td></tr>
</table>
</body></html>`)

	pre, post := PlayerRating(doc, nil)
	if pre != "1600" || post != "1610" {
		t.Errorf("expected outer-table rating (1600, 1610), got (%q, %q)", pre, post)
	}
}

func TestPlayerRatingAbsent(t *testing.T) {
	doc := parseHTML(t, `<html><body><p>no signature tables here</p></body></html>`)
	pre, post := PlayerRating(doc, nil)
	if pre != "" || post != "" {
		t.Errorf("expected empty ratings, got (%q, %q)", pre, post)
	}
}
