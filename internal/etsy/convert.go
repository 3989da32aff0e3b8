package etsy

import (
	"strconv"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// taxonomyCategories maps top-level Etsy taxonomy IDs to internal
// categories. Unknown taxonomies fall back to "other".
var taxonomyCategories = map[int64]domain.Category{
	1179: domain.CategoryJewelry,
	891:  domain.CategoryHomeDecor,
	374:  domain.CategoryClothing,
	68:   domain.CategoryArt,
	562:  domain.CategoryCraftSupplies,
	1552: domain.CategoryToys,
}

// ToListingData converts an Etsy API listing into a domain snapshot.
func toListingData(l *apiListing) domain.ListingData {
	d := domain.ListingData{
		EtsyListingID: strconv.FormatInt(l.ListingID, 10),
		Title:         l.Title,
		Description:   l.Description,
		Tags:          l.Tags,
		Currency:      l.Price.CurrencyCode,
		Favorites:     l.NumFavorers,
		Views:         l.Views,
		Category:      categoryFor(l.TaxonomyID),
	}

	if l.ShopID != 0 {
		d.ShopID = strconv.FormatInt(l.ShopID, 10)
	}

	if l.Price.Divisor > 0 {
		d.Price = float64(l.Price.Amount) / float64(l.Price.Divisor)
	}

	if len(l.Images) > 0 {
		d.Images = make([]domain.ListingImage, 0, len(l.Images))
		for i := range l.Images {
			d.Images = append(d.Images, toListingImage(&l.Images[i]))
		}
	}

	return d
}

func toListingImage(img *apiListingImage) domain.ListingImage {
	url := img.URLFullxl
	if url == "" {
		url = img.URL570xN
	}
	return domain.ListingImage{URL: url, AltText: img.AltText}
}

func toListings(results []apiListing) []domain.ListingData {
	listings := make([]domain.ListingData, 0, len(results))
	for i := range results {
		listings = append(listings, toListingData(&results[i]))
	}
	return listings
}

// toShopMetrics converts an Etsy API shop into a domain metrics
// snapshot. Monthly figures and conversion are not served directly by
// the API and stay zero until filled from shop stats.
func toShopMetrics(s *apiShop) domain.ShopMetrics {
	return domain.ShopMetrics{
		ShopID:         strconv.FormatInt(s.ShopID, 10),
		Name:           s.ShopName,
		Category:       domain.CategoryOther,
		ActiveListings: s.ListingActiveCount,
		AvgRating:      s.ReviewAverage,
		ReviewCount:    s.ReviewCount,
	}
}

func categoryFor(taxonomyID int64) domain.Category {
	if c, ok := taxonomyCategories[taxonomyID]; ok {
		return c
	}
	return domain.CategoryOther
}
