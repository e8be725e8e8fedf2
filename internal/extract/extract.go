package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kjarman/uscf-history/internal/normalize"
)

// The "main" layout table of crosstable pages comes in two width variants
// carrying the same schema. The 750 form is the canonical one; 800 is a
// compatibility fallback.
const (
	mainTableSelector         = `table[bgcolor="FFFFFF"][width="750"]`
	mainTableFallbackSelector = `table[bgcolor="FFFFFF"][width="800"]`

	// signatureTableSelector matches both variants, in document order.
	signatureTableSelector = mainTableSelector + ", " + mainTableFallbackSelector
)

// IsFillerCell reports whether td is the zero-content spacer cell the MSA
// renderer injects for layout alignment, identified by its fixed
// width=1 rowspan=20 signature. Filler cells must never be counted as data.
func IsFillerCell(td *goquery.Selection) bool {
	return td.AttrOr("width", "") == "1" && td.AttrOr("rowspan", "") == "20"
}

// rowColumns returns the flattened text of a row's direct-child cells with
// filler cells suppressed. Cells of nested tables are not included, so rows
// wrapping an inner table are not double-counted.
func rowColumns(tr *goquery.Selection) []string {
	var cols []string
	tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
		if IsFillerCell(td) {
			return
		}
		cols = append(cols, normalize.CollapseWhitespace(td.Text()))
	})
	return cols
}

// flattenedText returns the selection's text with a space at every element
// boundary. Text() concatenates adjacent text nodes with no separator, which
// fuses values like "2023-01-15<br><small>202301159992</small>" into one
// token.
func flattenedText(s *goquery.Selection) string {
	var parts []string
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			parts = append(parts, c.Text())
			return
		}
		parts = append(parts, flattenedText(c))
	})
	return strings.Join(parts, " ")
}

// directRows returns the rows belonging to table itself, excluding rows of
// any table nested inside it. The HTML parser inserts tbody elements, so a
// plain child filter on tr would come up empty.
func directRows(table *goquery.Selection) *goquery.Selection {
	if table.Length() == 0 {
		return table
	}
	node := table.Get(0)
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		owner := tr.Closest("table")
		return owner.Length() > 0 && owner.Get(0) == node
	})
}
