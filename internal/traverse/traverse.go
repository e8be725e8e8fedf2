package traverse

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kjarman/uscf-history/internal/diag"
	"github.com/kjarman/uscf-history/internal/extract"
	"github.com/kjarman/uscf-history/internal/msa"
)

// Fetcher retrieves one document body per URL. fetch.Fetcher satisfies this.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Controller resolves a player's tournament history into FinalRows. It is
// single-use: the visited set belongs to one Run and is never persisted.
type Controller struct {
	fetcher  Fetcher
	reporter diag.Reporter
	base     string
	visited  map[string]struct{}
}

// New creates a Controller resolving links against the MSA origin.
func New(fetcher Fetcher, reporter diag.Reporter) *Controller {
	if reporter == nil {
		reporter = diag.Discard
	}
	return &Controller{
		fetcher:  fetcher,
		reporter: reporter,
		base:     msa.BaseURL,
		visited:  make(map[string]struct{}),
	}
}

// crosstableResult is the outcome of resolving one event's cross-reference.
type crosstableResult struct {
	summary    msa.CrosstableSummary
	games      []msa.GameRecord
	ratingPre  string
	ratingPost string
}

// Run fetches the player's tournament history and resolves every event,
// returning one FinalRow per event in document order. yearPrefix, when
// non-empty, restricts events to those whose end date starts with it. A
// fetch that exhausts its retries aborts the run; everything structural
// (missing tables, missing links, zero games) degrades to empty fields.
func (c *Controller) Run(ctx context.Context, playerID, yearPrefix string) ([]msa.FinalRow, error) {
	histURL := msa.TournamentHistoryURL(c.base, playerID)
	body, err := c.fetcher.Fetch(ctx, histURL)
	if err != nil {
		return nil, fmt.Errorf("fetching tournament history: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing tournament history: %w", err)
	}

	events := extract.Tournaments(doc, c.reporter)
	if yearPrefix != "" {
		filtered := events[:0]
		for _, ev := range events {
			if strings.HasPrefix(ev.EndDate, yearPrefix) {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}
	c.reporter.Debug("events after filtering", diag.Fields{"count": len(events)})

	rows := make([]msa.FinalRow, 0, len(events))
	for i, ev := range events {
		c.reporter.Info("resolving event", diag.Fields{
			"index":    i + 1,
			"total":    len(events),
			"event":    ev.EventName,
			"event_id": ev.EventID,
		})

		row := msa.FinalRow{PlayerID: playerID, EventSummary: ev}
		if ev.CrossRef == "" {
			c.reporter.Debug("event has no cross-reference link", diag.Fields{"event_id": ev.EventID})
			rows = append(rows, row)
			continue
		}

		cr, err := c.resolveCrosstable(ctx, ev.CrossRef, playerID)
		if err != nil {
			return nil, fmt.Errorf("resolving event %s: %w", ev.EventID, err)
		}

		row.Location = cr.summary.Location()
		row.EventDates = cr.summary.EventDates()
		row.ChiefTD = cr.summary.ChiefTD()
		row.RatingPre = cr.ratingPre
		row.RatingPost = cr.ratingPost
		row.Games = cr.games
		// The player page's own rating row is authoritative for the regular
		// pair when present.
		if cr.ratingPre != "" {
			row.Regular.Before = cr.ratingPre
		}
		if cr.ratingPost != "" {
			row.Regular.After = cr.ratingPost
		}

		c.reporter.Info("event resolved", diag.Fields{"event_id": ev.EventID, "games": len(row.Games)})
		rows = append(rows, row)
	}
	return rows, nil
}

// resolveCrosstable walks one event's cross-reference: fetch the crosstable,
// extract its summary, locate the player-specific sub-link (trying the "all
// sections" variant when the direct link is absent), then extract the
// player's games and rating. A cross-reference already visited short-circuits
// to an empty result; a prior event sharing the section consumed it.
func (c *Controller) resolveCrosstable(ctx context.Context, link, playerID string) (crosstableResult, error) {
	res := crosstableResult{summary: msa.CrosstableSummary{}}

	if c.seen(link) {
		c.reporter.Debug("cross-reference already visited", diag.Fields{"link": link})
		return res, nil
	}
	c.visit(link)

	doc, err := c.fetchDocument(ctx, link)
	if err != nil {
		return res, err
	}
	res.summary = extract.Crosstable(doc)

	userLink := findPlayerLink(doc, playerID)
	if userLink == "" {
		userLink, err = c.tryAllSections(ctx, link, playerID, res.summary)
		if err != nil {
			return res, err
		}
	}
	if userLink == "" {
		c.reporter.Debug("no player link found, event is summary-only", diag.Fields{"link": link})
		return res, nil
	}

	playerDoc, err := c.fetchDocument(ctx, userLink)
	if err != nil {
		return res, err
	}
	page := extract.PlayerPage(playerDoc, c.reporter)
	res.games = page.Games
	res.ratingPre = page.PreRating
	res.ratingPost = page.PostRating
	return res, nil
}

// tryAllSections derives the .0 all-sections variant of link, fetches it if
// unvisited, merges its summary fields into summary (later keys overwrite),
// and repeats the player-link search against it.
func (c *Controller) tryAllSections(ctx context.Context, link, playerID string, summary msa.CrosstableSummary) (string, error) {
	zero, ok := msa.AllSectionsVariant(link)
	if !ok || c.seen(zero) {
		return "", nil
	}
	c.visit(zero)

	c.reporter.Info("trying all-sections crosstable", diag.Fields{"link": zero})
	doc, err := c.fetchDocument(ctx, zero)
	if err != nil {
		return "", err
	}
	summary.Merge(extract.Crosstable(doc))
	return findPlayerLink(doc, playerID), nil
}

func (c *Controller) fetchDocument(ctx context.Context, link string) (*goquery.Document, error) {
	body, err := c.fetcher.Fetch(ctx, c.base+link)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", link, err)
	}
	return doc, nil
}

func (c *Controller) seen(link string) bool {
	_, ok := c.visited[link]
	return ok
}

func (c *Controller) visit(link string) {
	c.visited[link] = struct{}{}
}

// findPlayerLink returns the first hyperlink referencing the player's
// crosstable section, or "".
func findPlayerLink(doc *goquery.Document, playerID string) string {
	var link string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := a.AttrOr("href", "")
		if msa.IsPlayerLink(href, playerID) {
			link = href
			return false
		}
		return true
	})
	return link
}
