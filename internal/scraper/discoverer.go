package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"shopfeed/internal/observability"
)

// SeenCache filters out product URLs already ingested by earlier runs.
// A nil cache disables the check.
type SeenCache interface {
	Seen(ctx context.Context, url string) bool
}

// Discoverer walks listing entry points and collects candidate product detail
// URLs up to a cap. One failing entry point never fails the pass; it only
// lowers the yield.
type Discoverer struct {
	Page   Page
	Source *Source
	Seen   SeenCache
	Log    *logrus.Entry

	Settle      time.Duration
	ScrollCycle int
	ScrollWait  time.Duration
	EntryDelay  Delay

	// Sleep is swapped out in tests.
	Sleep func(time.Duration)
}

func NewDiscoverer(page Page, src *Source, log *logrus.Entry) *Discoverer {
	return &Discoverer{
		Page:        page,
		Source:      src,
		Log:         log,
		Settle:      4 * time.Second,
		ScrollCycle: 3,
		ScrollWait:  1500 * time.Millisecond,
		EntryDelay:  Delay{Min: 2 * time.Second, Max: 5 * time.Second},
		Sleep:       time.Sleep,
	}
}

// Discover visits the entry points in order and returns an insertion-ordered,
// deduplicated list of product URLs, at most max long.
func (d *Discoverer) Discover(ctx context.Context, entries []EntryPoint, max int) []string {
	var urls []string
	seen := make(map[string]bool)

	for i, ep := range entries {
		if len(urls) >= max {
			break
		}
		if i > 0 {
			d.Sleep(d.EntryDelay.Jittered())
		}

		found, err := d.scanEntryPoint(ctx, ep)
		if err != nil {
			d.Log.WithFields(logrus.Fields{"entry": ep.Label, "url": ep.URL}).
				Warnf("entry point failed: %v", err)
			continue
		}
		if len(found) == 0 {
			d.Log.WithField("entry", ep.Label).Warn("entry point yielded no product links")
			continue
		}

		added := 0
		for _, u := range found {
			if seen[u] {
				continue
			}
			if d.Seen != nil && d.Seen.Seen(ctx, u) {
				continue
			}
			seen[u] = true
			urls = append(urls, u)
			added++
			if len(urls) >= max {
				break
			}
		}
		d.Log.WithFields(logrus.Fields{"entry": ep.Label, "found": len(found), "added": added}).
			Info("entry point scanned")
	}

	observability.DiscoveredURLs.Add(float64(len(urls)))
	return urls
}

func (d *Discoverer) scanEntryPoint(ctx context.Context, ep EntryPoint) ([]string, error) {
	if err := d.Page.Navigate(ctx, ep.URL); err != nil {
		return nil, err
	}
	d.Sleep(d.Settle)

	// Lazy-loaded grids only render on scroll.
	for i := 0; i < d.ScrollCycle; i++ {
		if err := d.Page.ScrollBottom(ctx); err != nil {
			break
		}
		d.Sleep(d.ScrollWait)
	}
	_ = d.Page.ScrollTop(ctx)

	html, err := d.Page.HTML(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var found []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if u, ok := d.Source.Canonicalize(href, ep.URL); ok {
			found = append(found, u)
		}
	})
	observability.PagesVisited.Inc()
	return found, nil
}
