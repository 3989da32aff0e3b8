package etsy

// listingsResponse is the Etsy API envelope for listing collections.
type listingsResponse struct {
	Count   int          `json:"count"`
	Results []apiListing `json:"results"`
}

// apiListing represents a single listing from the Etsy Open API.
type apiListing struct {
	ListingID   int64    `json:"listing_id"`
	ShopID      int64    `json:"shop_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	State       string   `json:"state"`
	Tags        []string `json:"tags"`
	TaxonomyID  int64    `json:"taxonomy_id"`

	Price       apiMoney `json:"price"`
	NumFavorers int      `json:"num_favorers"`
	Views       int      `json:"views"`

	Images []apiListingImage `json:"images,omitempty"`
	Shop   *apiShop          `json:"shop,omitempty"`
}

// apiMoney is Etsy's fixed-point money representation.
type apiMoney struct {
	Amount       int64  `json:"amount"`
	Divisor      int64  `json:"divisor"`
	CurrencyCode string `json:"currency_code"`
}

// apiListingImage holds one listing photo.
type apiListingImage struct {
	ListingImageID int64  `json:"listing_image_id"`
	URLFullxl      string `json:"url_fullxl"`
	URL570xN       string `json:"url_570xN"`
	AltText        string `json:"alt_text"`
}

// shopsResponse is the Etsy API envelope for shop collections.
type shopsResponse struct {
	Count   int       `json:"count"`
	Results []apiShop `json:"results"`
}

// apiShop represents a shop from the Etsy Open API.
type apiShop struct {
	ShopID              int64   `json:"shop_id"`
	ShopName            string  `json:"shop_name"`
	ListingActiveCount  int     `json:"listing_active_count"`
	TransactionSoldCount int    `json:"transaction_sold_count"`
	ReviewCount         int     `json:"review_count"`
	ReviewAverage       float64 `json:"review_average"`
	NumFavorers         int     `json:"num_favorers"`
}

// apiReviews is the envelope returned by the listing reviews endpoint.
type apiReviews struct {
	Count   int `json:"count"`
	Results []struct {
		Rating int `json:"rating"`
	} `json:"results"`
}
