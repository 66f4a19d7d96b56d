package models

import "time"

// Unit types used by the catalog. Price is always per kilogram regardless of
// the unit type; piece/box products carry an average unit weight so a count
// can be converted to a billable weight.
const (
	UnitKg    = "kg"
	UnitPiece = "piece"
	UnitBox   = "box"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

// Product is a catalog entry as served by the backend. Read-only on this side.
type Product struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"category_id,omitempty"`
	Category      *Category `json:"category,omitempty"`
	UnitType      string    `json:"unit_type"`
	AvgUnitWeight float64   `json:"avg_unit_weight,omitempty"`
	CurrentPrice  float64   `json:"current_price"`
	StockQuantity float64   `json:"stock_quantity"`
	Description   string    `json:"description,omitempty"`
	Origin        string    `json:"origin,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Tags          []string  `json:"tags"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// WeightBased reports whether the product is sold by continuous weight.
func (p Product) WeightBased() bool { return p.UnitType == UnitKg }

// CountBased reports whether the product is sold by discrete count.
func (p Product) CountBased() bool { return p.UnitType == UnitPiece || p.UnitType == UnitBox }

type ImportSource struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	SourceType  string         `json:"source_type"`
	ContactInfo map[string]any `json:"contact_info"`
	Notes       string         `json:"notes,omitempty"`
}

type ImportBatch struct {
	ID              string         `json:"id"`
	SeafoodID       string         `json:"seafood_id"`
	Seafood         *Product       `json:"seafood,omitempty"`
	BatchCode       string         `json:"batch_code"`
	ImportSourceID  string         `json:"import_source_id,omitempty"`
	ImportSource    *ImportSource  `json:"import_source,omitempty"`
	ImportDate      string         `json:"import_date"`
	ImportPrice     float64        `json:"import_price"`
	SellPrice       float64        `json:"sell_price"`
	TotalWeight     float64        `json:"total_weight"`
	RemainingWeight float64        `json:"remaining_weight"`
	Notes           string         `json:"notes,omitempty"`
	ImportDetails   map[string]any `json:"import_details,omitempty"`
	Status          string         `json:"status"`
}
