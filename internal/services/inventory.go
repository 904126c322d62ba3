package service

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"inventory-manager/internal/cache"
	"inventory-manager/internal/config"
	"inventory-manager/internal/errors"
	"inventory-manager/internal/models"
	repository "inventory-manager/internal/repositories"
	"inventory-manager/internal/utils"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	ListProducts(ctx context.Context, ownerID uuid.UUID, query models.ListProductsQuery) (*models.ProductListResponse, error)
	CreateProduct(ctx context.Context, ownerID uuid.UUID, req *models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, ownerID, id uuid.UUID, req *models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, ownerID, id uuid.UUID) error
	DashboardStats(ctx context.Context, ownerID uuid.UUID) (*models.DashboardStats, error)
	Categories() []string
	SuggestedImages(category string) []string
}

type productService struct {
	repo      repository.ProductRepository
	cache     cache.Cache
	inventory config.Inventory
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, statsCache cache.Cache, inventory config.Inventory) ProductService {
	return &productService{
		repo:      repo,
		cache:     statsCache,
		inventory: inventory,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// FilterProducts applies the dashboard's search box and category picker.
// Both predicates are conjunctive: a product matches when its name or
// category contains the search term (case-insensitive; an empty term
// matches everything) and the category filter is "all" or equal.
func FilterProducts(products []*models.Product, search, category string) []*models.Product {
	search = strings.ToLower(search)

	filtered := make([]*models.Product, 0, len(products))

	for _, p := range products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Category), search)
		matchesCategory := category == "" || category == "all" || p.Category == category

		if matchesSearch && matchesCategory {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// ComputeStats derives the dashboard aggregates from the full product
// set; search and category filters never narrow these numbers.
func ComputeStats(products []*models.Product, lowStockThreshold int64) *models.DashboardStats {
	stats := &models.DashboardStats{TotalProducts: len(products)}

	for _, p := range products {
		stats.TotalValue += p.Price * float64(p.Quantity)

		if p.Quantity < lowStockThreshold {
			stats.LowStockCount++
		}
		if p.Quantity == 0 {
			stats.OutOfStockCount++
		}
	}

	stats.TotalValueFormatted = utils.FormatINR(stats.TotalValue)

	return stats
}

// StockStatusFor picks the badge state. Out of stock is strictly
// stronger than low stock.
func StockStatusFor(quantity, lowStockThreshold int64) string {
	switch {
	case quantity == 0:
		return models.StockStatusOut
	case quantity < lowStockThreshold:
		return models.StockStatusLow
	default:
		return models.StockStatusIn
	}
}

func (s *productService) ListProducts(ctx context.Context, ownerID uuid.UUID, query models.ListProductsQuery) (*models.ProductListResponse, error) {

	products, err := s.repo.ListProducts(ctx, ownerID)
	if err != nil {
		return nil, errors.StoreError(err.Error()).WithError(err)
	}

	for _, p := range products {
		p.StockStatus = StockStatusFor(p.Quantity, s.inventory.LowStockThreshold)
	}

	filtered := FilterProducts(products, query.Search, query.Category)

	return &models.ProductListResponse{
		Products:      filtered,
		TotalCount:    len(products),
		FilteredCount: len(filtered),
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, req *models.ProductRequest) (*models.Product, error) {

	product, err := s.buildProduct(ownerID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.StoreError(err.Error()).WithError(err)
	}

	s.invalidateStats(ctx, ownerID)

	product.StockStatus = StockStatusFor(product.Quantity, s.inventory.LowStockThreshold)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, ownerID, id uuid.UUID, req *models.ProductRequest) (*models.Product, error) {

	product, err := s.buildProduct(ownerID, req)
	if err != nil {
		return nil, err
	}

	product.ID = id

	if err := s.repo.UpdateProduct(ctx, product); err != nil {

		if err == sql.ErrNoRows {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.StoreError(err.Error()).WithError(err)
	}

	s.invalidateStats(ctx, ownerID)

	product.StockStatus = StockStatusFor(product.Quantity, s.inventory.LowStockThreshold)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, ownerID, id uuid.UUID) error {

	if err := s.repo.DeleteProduct(ctx, id, ownerID); err != nil {
		return errors.StoreError(err.Error()).WithError(err)
	}

	s.invalidateStats(ctx, ownerID)

	return nil
}

func (s *productService) DashboardStats(ctx context.Context, ownerID uuid.UUID) (*models.DashboardStats, error) {

	key := cache.Key(cache.StatsKeyPrefix, ownerID.String())

	stats := &models.DashboardStats{}
	if hit, err := s.cache.Get(ctx, key, stats); err == nil && hit {
		return stats, nil
	}

	products, err := s.repo.ListProducts(ctx, ownerID)
	if err != nil {
		return nil, errors.StoreError(err.Error()).WithError(err)
	}

	stats = ComputeStats(products, s.inventory.LowStockThreshold)

	if err := s.cache.Set(ctx, key, stats, 0); err != nil {
		slog.Warn("Failed to cache dashboard stats", slog.String("error", err.Error()))
	}

	return stats, nil
}

func (s *productService) Categories() []string {
	return s.inventory.Categories
}

func (s *productService) SuggestedImages(category string) []string {
	if images, ok := models.SuggestedImages[category]; ok {
		return images
	}

	return models.SuggestedImages[models.FallbackImageCategory]
}

// buildProduct turns the submitted field set into a store-ready record:
// text fields sanitized, category checked against the configured set,
// unusable image URLs cleared rather than stored broken.
func (s *productService) buildProduct(ownerID uuid.UUID, req *models.ProductRequest) (*models.Product, error) {

	if !slices.Contains(s.inventory.Categories, req.Category) {
		return nil, errors.AddValidationError("category", "must be one of the configured categories")
	}

	name := strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	if name == "" {
		return nil, errors.AddValidationError("name", "must not be empty")
	}

	return &models.Product{
		OwnerID:     ownerID,
		Name:        name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: strings.TrimSpace(s.sanitizer.Sanitize(req.Description)),
		ImageURL:    normalizeImageURL(req.ImageURL),
	}, nil
}

// normalizeImageURL clears anything that is not an absolute http(s) URI.
func normalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}

	return raw
}

// Stats caching is best effort; a failed invalidation only shortens the
// staleness window to the cache TTL.
func (s *productService) invalidateStats(ctx context.Context, ownerID uuid.UUID) {
	key := cache.Key(cache.StatsKeyPrefix, ownerID.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Failed to invalidate dashboard stats cache", slog.String("error", err.Error()))
	}
}
