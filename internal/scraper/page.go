package scraper

import (
	"context"
	"math/rand"
	"time"
)

// Page is the slice of browser automation the pipeline consumes. The go-rod
// implementation lives in internal/browser; tests substitute static HTML.
type Page interface {
	Navigate(ctx context.Context, url string) error
	HTML(ctx context.Context) (string, error)
	ScrollBottom(ctx context.Context) error
	ScrollTop(ctx context.Context) error
	Screenshot(ctx context.Context, path string) error
}

// Delay is a fixed-plus-jitter pause range. Rate limiting against the target
// sites is done entirely with these sleeps; there is no concurrency to cap.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

func (d Delay) Jittered() time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(rand.Int63n(int64(d.Max-d.Min)))
}
