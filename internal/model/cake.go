package model

import "time"

// Cake represents a cake listing in the database. Deleted listings are kept
// for recovery and never returned by the public catalog queries.
type Cake struct {
	ID          int64
	Name        string
	Description string
	Flavor      string
	Category    string
	PriceRange  string
	ImageURL    string
	Tags        []string
	Featured    bool
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CakeInput carries the fields of a new cake listing after boundary parsing.
// Form-level concerns ("true"/"false" strings, JSON-encoded tags) are already
// resolved into real types by the handler.
type CakeInput struct {
	Name        string
	Description string
	Flavor      string
	Category    string
	PriceRange  string
	ImageURL    string
	Tags        []string
	Featured    bool
}

// CakeUpdate carries a partial update. An empty string leaves the stored
// value unchanged. Tags replace the stored sequence wholesale when TagsSet
// is true. A nil Featured leaves the flag untouched.
type CakeUpdate struct {
	Name        string
	Description string
	Flavor      string
	Category    string
	PriceRange  string
	ImageURL    string
	Tags        []string
	TagsSet     bool
	Featured    *bool
}

// CakeResponse is the JSON shape served to the storefront and the admin
// dashboard.
type CakeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Flavor      string    `json:"flavor"`
	Category    string    `json:"category"`
	PriceRange  string    `json:"priceRange"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	IsFeatured  bool      `json:"isFeatured"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
