package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopfeed/internal/model"
)

// CatalogRepository is the sole writer into the products table. The pipeline
// only appends; edits and deletes happen through the admin surface, not here.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

// Insert appends one product row. A unique-constraint violation (duplicate
// slug or source URL) comes back as a plain error for the caller to log and
// count; there is deliberately no ON CONFLICT clause, the constraint is the
// dedup backstop.
func (r *CatalogRepository) Insert(ctx context.Context, p *model.NormalizedProduct) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO products
		(external_id, shop_id, title, slug, description, thumbnail_url,
		 image_urls, video_url, price, price_local, original_price,
		 discount_percent, currency, rating, review_count, sold_count,
		 category, seller_name, free_shipping, availability,
		 source_platform, source_url, tags, is_featured, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,
		        $17,$18,$19,$20,$21,$22,$23,$24,$25)
	`,
		p.ExternalID, p.ShopID, p.Title, p.Slug, p.Description, p.ThumbnailURL,
		p.ImageURLs, p.VideoURL, p.Price, p.PriceLocal, p.OriginalPrice,
		p.DiscountPercent, p.Currency, p.Rating, p.ReviewCount, p.SoldCount,
		p.Category, p.SellerName, p.FreeShipping, p.Availability,
		p.SourcePlatform, p.SourceURL, p.Tags, p.IsFeatured, p.IsActive)
	if err != nil {
		return fmt.Errorf("insert product %s: %w", p.ExternalID, err)
	}
	return nil
}

// Count reports how many catalog rows a platform has contributed, for the
// end-of-run summary.
func (r *CatalogRepository) Count(ctx context.Context, platform string) (int64, error) {
	var n int64
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE source_platform = $1`, platform).Scan(&n)
	return n, err
}

// RecentSourceURLs returns the newest source URLs for a platform, used to
// warm the cross-run seen cache so repeat listings get skipped early.
func (r *CatalogRepository) RecentSourceURLs(ctx context.Context, platform string, limit int) ([]string, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT source_url FROM products
		WHERE source_platform = $1
		ORDER BY id DESC
		LIMIT $2
	`, platform, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}
