package main

import (
	"context"
	"flag"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shopfeed/internal/browser"
	"shopfeed/internal/config"
	"shopfeed/internal/db"
	"shopfeed/internal/observability"
	"shopfeed/internal/repository"
	"shopfeed/internal/scraper"
	"shopfeed/internal/seen"
)

// go run cmd/scraper/main.go -platform=shopee -mode=bestsellers -max=20
// go run cmd/scraper/main.go -platform=amazon -mode=search -keyword="wireless earbuds"
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	cfg := config.Load()

	platform := flag.String("platform", cfg.Platform, "Marketplace: shopee, amazon or ebay")
	mode := flag.String("mode", cfg.Mode, "Run mode: bestsellers, new-releases, movers-shakers or search")
	keyword := flag.String("keyword", cfg.SearchKeyword, "Search keyword (mode=search)")
	category := flag.String("category", cfg.Category, "Category filter")
	max := flag.Int("max", cfg.MaxProducts, "Max products to ingest this run")
	headless := flag.Bool("headless", cfg.Headless, "Run the browser headless")
	flag.Parse()

	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL is required")
	}
	src, err := scraper.BySourceName(*platform)
	if err != nil {
		logrus.Fatal(err)
	}
	if *mode == "search" && *keyword == "" {
		logrus.Fatal("mode=search requires a keyword")
	}

	runID := uuid.New().String()[:8]
	log := logrus.WithFields(logrus.Fields{"run": runID, "platform": src.Platform, "mode": *mode})

	if cfg.MetricsPort != "" {
		observability.Start(cfg.MetricsPort)
		log.Infof("metrics on :%s/metrics", cfg.MetricsPort)
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("connect catalog store: %v", err)
	}
	defer pool.Close()
	repo := &repository.CatalogRepository{DB: pool}

	var cache *seen.Cache
	if cfg.RedisURL != "" {
		cache, err = seen.New(cfg.RedisURL)
		if err != nil {
			log.Warnf("seen cache unavailable, continuing without: %v", err)
		} else {
			defer cache.Close()
			if urls, err := repo.RecentSourceURLs(ctx, src.Platform, 500); err == nil {
				cache.Warm(ctx, urls)
				log.Infof("seen cache warmed with %d catalog urls", len(urls))
			}
		}
	}

	br, err := browser.Launch(*headless)
	if err != nil {
		logrus.Fatalf("launch browser: %v", err)
	}
	defer br.Close()
	page, err := br.NewPage()
	if err != nil {
		logrus.Fatalf("open page: %v", err)
	}
	defer page.Close()

	discoverer := scraper.NewDiscoverer(page, src, log)
	if cache != nil {
		discoverer.Seen = cache
	}
	entries := src.EntryPoints(*mode, *keyword, *category)
	log.Infof("discovering up to %d products across %d entry points", *max, len(entries))
	urls := discoverer.Discover(ctx, entries, *max)
	if len(urls) == 0 {
		// An empty completed run is still a completed run: exit 0.
		log.Warn("no product urls discovered, nothing to do")
		return
	}
	log.Infof("discovered %d product urls", len(urls))

	pipeline := scraper.NewPipeline(page, src, repo, log)
	pipeline.ScreenshotDir = cfg.ScreenshotDir
	if cache != nil {
		pipeline.Seen = cache
	}
	report := pipeline.Run(ctx, urls)

	if total, err := repo.Count(ctx, src.Platform); err == nil {
		log.Infof("catalog now holds %d %s products", total, src.Platform)
	}
	log.Infof("run complete: %d/%d succeeded", report.Succeeded, report.Attempted)
}
