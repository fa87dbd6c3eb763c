package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// fakePage serves canned HTML per URL, tracking navigation order.
type fakePage struct {
	pages     map[string]string
	failURLs  map[string]bool
	visited   []string
	current   string
	shotPaths []string
}

func newFakePage() *fakePage {
	return &fakePage{pages: map[string]string{}, failURLs: map[string]bool{}}
}

func (f *fakePage) Navigate(_ context.Context, url string) error {
	f.visited = append(f.visited, url)
	if f.failURLs[url] {
		return errors.New("net::ERR_CONNECTION_RESET")
	}
	f.current = url
	return nil
}

func (f *fakePage) HTML(context.Context) (string, error) {
	html, ok := f.pages[f.current]
	if !ok {
		return "", errors.New("no document loaded")
	}
	return html, nil
}

func (f *fakePage) ScrollBottom(context.Context) error { return nil }
func (f *fakePage) ScrollTop(context.Context) error    { return nil }

func (f *fakePage) Screenshot(_ context.Context, path string) error {
	f.shotPaths = append(f.shotPaths, path)
	return nil
}

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

func quietDiscoverer(page Page, src *Source) *Discoverer {
	d := NewDiscoverer(page, src, testLog())
	d.Sleep = func(time.Duration) {}
	return d
}

func TestDiscoverDedup(t *testing.T) {
	page := newFakePage()
	page.pages["https://site/best"] = `<html><body>
		<a href="/product/1/100?src=reco">one</a>
		<a href="/product/1/100">one again</a>
		<a href="https://site/product/1/100#reviews">one a third time</a>
	</body></html>`

	urls := quietDiscoverer(page, testSource()).Discover(context.Background(),
		[]EntryPoint{{Label: "best", URL: "https://site/best"}}, 10)

	if len(urls) != 1 {
		t.Fatalf("got %d urls, want the same product link deduplicated to 1: %v", len(urls), urls)
	}
	if urls[0] != "https://site/product/1/100" {
		t.Errorf("url = %q, want canonicalized without query/fragment", urls[0])
	}
}

func TestDiscoverCap(t *testing.T) {
	page := newFakePage()
	page.pages["https://site/best"] = `<html><body>
		<a href="/product/1/101">a</a>
		<a href="/product/1/102">b</a>
		<a href="/product/1/103">c</a>
	</body></html>`
	page.pages["https://site/new"] = `<html><body>
		<a href="/product/2/201">d</a>
		<a href="/product/2/202">e</a>
	</body></html>`

	entries := []EntryPoint{
		{Label: "best", URL: "https://site/best"},
		{Label: "new", URL: "https://site/new"},
	}
	urls := quietDiscoverer(page, testSource()).Discover(context.Background(), entries, 4)

	if len(urls) != 4 {
		t.Errorf("got %d urls, want exactly the cap of 4", len(urls))
	}
}

func TestDiscoverCapStopsVisiting(t *testing.T) {
	page := newFakePage()
	page.pages["https://site/best"] = `<html><body>
		<a href="/product/1/101">a</a>
		<a href="/product/1/102">b</a>
	</body></html>`
	page.pages["https://site/new"] = `<html><body><a href="/product/2/201">c</a></body></html>`

	entries := []EntryPoint{
		{Label: "best", URL: "https://site/best"},
		{Label: "new", URL: "https://site/new"},
	}
	quietDiscoverer(page, testSource()).Discover(context.Background(), entries, 2)

	if len(page.visited) != 1 {
		t.Errorf("visited %v, want discovery to stop once the cap is reached", page.visited)
	}
}

func TestDiscoverEntryPointFailureContinues(t *testing.T) {
	page := newFakePage()
	page.failURLs["https://site/best"] = true
	page.pages["https://site/new"] = `<html><body><a href="/product/2/201">c</a></body></html>`

	entries := []EntryPoint{
		{Label: "best", URL: "https://site/best"},
		{Label: "new", URL: "https://site/new"},
	}
	urls := quietDiscoverer(page, testSource()).Discover(context.Background(), entries, 10)

	if len(urls) != 1 {
		t.Errorf("got %d urls, want the second entry point to still yield after the first failed", len(urls))
	}
}

type fakeSeen struct{ seen map[string]bool }

func (f *fakeSeen) Seen(_ context.Context, url string) bool { return f.seen[url] }
func (f *fakeSeen) Mark(_ context.Context, url string) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	f.seen[url] = true
}

func TestDiscoverSkipsSeenURLs(t *testing.T) {
	page := newFakePage()
	page.pages["https://site/best"] = `<html><body>
		<a href="/product/1/101">a</a>
		<a href="/product/1/102">b</a>
	</body></html>`

	d := quietDiscoverer(page, testSource())
	d.Seen = &fakeSeen{seen: map[string]bool{"https://site/product/1/101": true}}
	urls := d.Discover(context.Background(),
		[]EntryPoint{{Label: "best", URL: "https://site/best"}}, 10)

	if len(urls) != 1 || urls[0] != "https://site/product/1/102" {
		t.Errorf("urls = %v, want the previously ingested link skipped", urls)
	}
}
