package browser

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Desktop user agents rotated per page to blunt the cheapest UA-based bot
// checks. Nothing adaptive; picked once at page creation.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// Browser wraps a rod browser plus its launcher so Close can tear both down.
type Browser struct {
	rb *rod.Browser
	l  *launcher.Launcher
}

// Launch starts a Chromium instance. Headless false pops a visible window,
// useful when tuning selectors against a live site.
func Launch(headless bool) (*Browser, error) {
	l := launcher.New().
		Headless(headless).
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled")
	if bin, err := os.Stat("/usr/bin/chromium-browser"); err == nil && !bin.IsDir() {
		l = l.Bin("/usr/bin/chromium-browser")
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	rb := rod.New().ControlURL(u)
	if err := rb.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	return &Browser{rb: rb, l: l}, nil
}

func (b *Browser) Close() {
	_ = b.rb.Close()
	b.l.Cleanup()
}

// NewPage opens a tab with a spoofed user agent and webdriver flag masked.
func (b *Browser) NewPage() (*Page, error) {
	p, err := b.rb.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	ua := userAgents[rand.Intn(len(userAgents))]
	if err := p.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua}); err != nil {
		return nil, fmt.Errorf("set user agent: %w", err)
	}
	_, _ = p.EvalOnNewDocument(`Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`)
	return &Page{p: p}, nil
}

// Page implements the scraper.Page contract on a rod tab.
type Page struct {
	p *rod.Page
}

func (pg *Page) Navigate(ctx context.Context, url string) error {
	p := pg.p.Context(ctx)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return p.WaitLoad()
}

func (pg *Page) HTML(ctx context.Context) (string, error) {
	return pg.p.Context(ctx).HTML()
}

func (pg *Page) ScrollBottom(ctx context.Context) error {
	_, err := pg.p.Context(ctx).Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	return err
}

func (pg *Page) ScrollTop(ctx context.Context) error {
	_, err := pg.p.Context(ctx).Eval(`() => window.scrollTo(0, 0)`)
	return err
}

func (pg *Page) Screenshot(ctx context.Context, path string) error {
	data, err := pg.p.Context(ctx).Screenshot(false, nil)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (pg *Page) Close() {
	_ = pg.p.Close()
}
