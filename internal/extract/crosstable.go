package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kjarman/uscf-history/internal/msa"
	"github.com/kjarman/uscf-history/internal/normalize"
)

// Crosstable extracts the event metadata table of a crosstable document into
// a label/value map. Labels are lower-cased and trimmed; unknown labels are
// retained verbatim so new fields in the source survive extraction. A missing
// main table yields an empty map, not an error.
func Crosstable(doc *goquery.Document) msa.CrosstableSummary {
	summary := msa.CrosstableSummary{}

	// The canonical 750 table wins over the 800 fallback even when the
	// fallback appears earlier in the document.
	main := doc.Find(mainTableSelector).First()
	if main.Length() == 0 {
		main = doc.Find(mainTableFallbackSelector).First()
	}
	if main.Length() == 0 {
		return summary
	}

	main.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(normalize.CollapseWhitespace(cells.Eq(0).Text()))
		value := normalize.CollapseWhitespace(cells.Eq(1).Text())
		if label == msa.KeyLocation {
			value = normalize.FixLocation(value)
		}
		summary[label] = value
	})
	return summary
}
