package product

import "time"

// Specs is the nested spec sheet of a product. Every field is optional.
type Specs struct {
	Display      string            `json:"display,omitempty"`
	Camera       string            `json:"camera,omitempty"`
	Performance  string            `json:"performance,omitempty"`
	Battery      string            `json:"battery,omitempty"`
	Storage      string            `json:"storage,omitempty"`
	RAM          string            `json:"ram,omitempty"`
	OS           string            `json:"os,omitempty"`
	Chipset      string            `json:"chipset,omitempty"`
	Dimensions   string            `json:"dimensions,omitempty"`
	Weight       string            `json:"weight,omitempty"`
	Connectivity string            `json:"connectivity,omitempty"`
	Extras       map[string]string `json:"extras,omitempty"`
}

// PriceSource is one merchant listing for a product.
// swagger:model PriceSource
type PriceSource struct {
	Merchant string `json:"merchant"`
	URL      string `json:"url,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price string `json:"price"`
}

type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	Brand    string `json:"brand"`

	Images    []string `json:"images"`
	Thumbnail string   `json:"thumbnail,omitempty"`

	// Price as string (NUMERIC -> string)
	Price        string        `json:"price"`
	PriceSources []PriceSource `json:"price_sources,omitempty"`

	Rating     *float64 `json:"rating,omitempty"`
	Popularity int      `json:"popularity"`

	Specs Specs    `json:"specs"`
	Tags  []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// ListResponse is the paginated product listing.
// swagger:model
type ListResponse struct {
	Items []Product `json:"items"`
	// page applied (1-based, after clamping)
	Page int `json:"page"`
	// limit applied
	Limit int `json:"limit"`
	// total matches for the filter, ignoring the page window
	Total int64 `json:"total"`
}

// CompareRequest selects up to four products by id or slug.
// swagger:model CompareRequest
type CompareRequest struct {
	IDs []string `json:"ids"`
}
