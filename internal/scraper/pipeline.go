package scraper

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"shopfeed/internal/currency"
	"shopfeed/internal/model"
	"shopfeed/internal/observability"
	"shopfeed/internal/slug"
)

// featuredThreshold is the volume metric floor for the featured flag:
// rating >= 4.5 AND volume >= 1000.
const (
	featuredRating = 4.5
	featuredVolume = 1000
)

// ErrUnusablePage marks pages that yielded no title or external id. The item
// is discarded, never retried.
var ErrUnusablePage = errors.New("page yielded no usable record")

// Writer appends one normalized product to the catalog. Store errors come
// back to the pipeline where they are logged and counted, never retried.
type Writer interface {
	Insert(ctx context.Context, p *model.NormalizedProduct) error
}

// SeenMarker records a source URL as ingested after a successful write.
type SeenMarker interface {
	Mark(ctx context.Context, url string)
}

// RunReport is the final tally of a pipeline pass.
type RunReport struct {
	Attempted int
	Succeeded int
}

// Pipeline processes discovered URLs strictly one at a time: navigate, settle,
// extract, normalize, write. Sequential on purpose; the binding constraint is
// staying under anti-bot rate triggers, not throughput.
type Pipeline struct {
	Page   Page
	Source *Source
	Writer Writer
	Seen   SeenMarker
	Log    *logrus.Entry

	SettleDelay Delay
	ItemDelay   Delay

	// ScreenshotDir, when set, receives a debug screenshot for every page
	// that failed to yield a usable record.
	ScreenshotDir string

	Sleep func(time.Duration)
}

func NewPipeline(page Page, src *Source, w Writer, log *logrus.Entry) *Pipeline {
	return &Pipeline{
		Page:        page,
		Source:      src,
		Writer:      w,
		Log:         log,
		SettleDelay: Delay{Min: 3 * time.Second, Max: 6 * time.Second},
		ItemDelay:   Delay{Min: 2 * time.Second, Max: 7 * time.Second},
		Sleep:       time.Sleep,
	}
}

// Run processes every URL and reports the tally. Per-item failures are logged
// and counted; nothing short of context cancellation stops the loop.
func (p *Pipeline) Run(ctx context.Context, urls []string) RunReport {
	var report RunReport
	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			p.Sleep(p.ItemDelay.Jittered())
		}

		report.Attempted++
		observability.ProductsAttempted.Inc()
		log := p.Log.WithFields(logrus.Fields{"item": fmt.Sprintf("%d/%d", i+1, len(urls)), "url": u})

		if err := p.processOne(ctx, u); err != nil {
			observability.ProductsFailed.Inc()
			log.Warnf("item failed: %v", err)
			continue
		}
		report.Succeeded++
		observability.ProductsSucceeded.Inc()
		log.Info("product ingested")
	}
	return report
}

func (p *Pipeline) processOne(ctx context.Context, pageURL string) error {
	if err := p.Page.Navigate(ctx, pageURL); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	p.Sleep(p.SettleDelay.Jittered())

	html, err := p.Page.HTML(ctx)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	observability.PagesVisited.Inc()

	fields := NewExtractor(p.Source).Extract(pageURL, doc)
	if !fields.Usable() {
		p.debugShot(ctx, fields.ExternalID)
		return ErrUnusablePage
	}

	product := p.Normalize(pageURL, fields)
	if err := p.Writer.Insert(ctx, product); err != nil {
		return fmt.Errorf("catalog insert: %w", err)
	}
	if p.Seen != nil {
		p.Seen.Mark(ctx, pageURL)
	}
	return nil
}

// Normalize builds the catalog row from extracted fields: slug, converted
// price, tags and the featured flag.
func (p *Pipeline) Normalize(pageURL string, f model.ExtractedFields) *model.NormalizedProduct {
	volume := f.ReviewCount
	if p.Source.FeaturedVolume == "sold" && f.SoldCount != nil && *f.SoldCount > volume {
		volume = *f.SoldCount
	}

	return &model.NormalizedProduct{
		ExternalID:      f.ExternalID,
		ShopID:          f.ShopID,
		Title:           f.Title,
		Slug:            slug.Make(f.Title),
		Description:     f.Description,
		ThumbnailURL:    f.ThumbnailURL,
		ImageURLs:       f.ImageURLs,
		VideoURL:        f.VideoURL,
		Price:           f.Price,
		PriceLocal:      currency.Convert(f.Price, p.Source.Rate),
		OriginalPrice:   f.OriginalPrice,
		DiscountPercent: f.DiscountPercent,
		Currency:        p.Source.Currency,
		Rating:          f.Rating,
		ReviewCount:     f.ReviewCount,
		SoldCount:       f.SoldCount,
		Category:        f.Category,
		SellerName:      f.SellerName,
		FreeShipping:    f.FreeShipping,
		Availability:    f.Availability,
		SourcePlatform:  p.Source.Platform,
		SourceURL:       pageURL,
		Tags:            buildTags(p.Source.Platform, f.Category, f.SellerName),
		IsFeatured:      f.Rating >= featuredRating && volume >= featuredVolume,
		IsActive:        true,
	}
}

func buildTags(platform, category, seller string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, t := range []string{platform, category, seller} {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

func (p *Pipeline) debugShot(ctx context.Context, externalID string) {
	if p.ScreenshotDir == "" {
		return
	}
	name := externalID
	if name == "" {
		name = fmt.Sprintf("unknown-%d", time.Now().UnixMilli())
	}
	path := filepath.Join(p.ScreenshotDir, p.Source.Platform+"-"+name+".png")
	if err := p.Page.Screenshot(ctx, path); err != nil {
		p.Log.Debugf("screenshot failed: %v", err)
	}
}
