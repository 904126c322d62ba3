package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock display states, strongest first. OutOfStock wins over LowStock
// when quantity is zero; neither changes the aggregate counts.
const (
	StockStatusIn  = "in_stock"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_of_stock"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	StockStatus string    `json:"stock_status,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest is the full editable field set. Create and update share
// it: updates are whole-record replacements, never partial diffs.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ListProductsQuery carries the client's search/filter state. An empty
// Search matches everything; Category "all" (or empty) disables the
// category filter.
type ListProductsQuery struct {
	Search   string
	Category string
}

type ProductListResponse struct {
	Products      []*Product `json:"products"`
	TotalCount    int        `json:"total_count"`
	FilteredCount int        `json:"filtered_count"`
}

// DashboardStats is always derived from the owner's full product set,
// never from a filtered view.
type DashboardStats struct {
	TotalProducts       int     `json:"total_products"`
	TotalValue          float64 `json:"total_value"`
	TotalValueFormatted string  `json:"total_value_formatted"`
	LowStockCount       int     `json:"low_stock_count"`
	OutOfStockCount     int     `json:"out_of_stock_count"`
}
