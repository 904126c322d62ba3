package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	cachemocks "inventory-manager/internal/cache/mocks"
	"inventory-manager/internal/config"
	appErrors "inventory-manager/internal/errors"
	"inventory-manager/internal/models"
	"inventory-manager/internal/repositories/mocks"
	service "inventory-manager/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testInventory = config.Inventory{
	LowStockThreshold: 10,
	Categories: []string{
		"Electronics", "Clothing", "Food & Beverages", "Home & Garden",
		"Sports & Fitness", "Books & Media", "Health & Beauty",
		"Toys & Games", "Automotive", "Office Supplies",
	},
}

func newTestService(t *testing.T) (service.ProductService, *mocks.ProductRepository, *cachemocks.Cache) {
	t.Helper()

	mockRepo := new(mocks.ProductRepository)
	mockCache := new(cachemocks.Cache)

	return service.NewProductService(mockRepo, mockCache, testInventory), mockRepo, mockCache
}

func TestFilterProducts(t *testing.T) {
	products := []*models.Product{
		{Name: "Widget", Category: "Electronics", Price: 100, Quantity: 5},
	}

	t.Run("Search matches name substring case-insensitively", func(t *testing.T) {
		assert.Len(t, service.FilterProducts(products, "wid", "all"), 1)
	})

	t.Run("Search with no match returns empty", func(t *testing.T) {
		assert.Empty(t, service.FilterProducts(products, "xyz", "all"))
	})

	t.Run("Category filter excludes other categories", func(t *testing.T) {
		assert.Empty(t, service.FilterProducts(products, "", "Clothing"))
	})

	t.Run("Search matches category substring", func(t *testing.T) {
		assert.Len(t, service.FilterProducts(products, "electron", "all"), 1)
	})

	t.Run("Empty search matches everything", func(t *testing.T) {
		assert.Len(t, service.FilterProducts(products, "", "all"), 1)
		assert.Len(t, service.FilterProducts(products, "", ""), 1)
	})

	t.Run("Predicates are conjunctive", func(t *testing.T) {
		// Name matches but category filter does not.
		assert.Empty(t, service.FilterProducts(products, "wid", "Clothing"))
		// Category filter matches but search does not.
		assert.Empty(t, service.FilterProducts(products, "xyz", "Electronics"))
		// Both match.
		assert.Len(t, service.FilterProducts(products, "wid", "Electronics"), 1)
	})
}

func TestComputeStats(t *testing.T) {

	t.Run("Empty list yields zero value", func(t *testing.T) {
		stats := service.ComputeStats(nil, 10)

		assert.Equal(t, 0, stats.TotalProducts)
		assert.Zero(t, stats.TotalValue)
		assert.Equal(t, 0, stats.LowStockCount)
		assert.Equal(t, 0, stats.OutOfStockCount)
		assert.Equal(t, "₹0", stats.TotalValueFormatted)
	})

	t.Run("Total value sums price times quantity", func(t *testing.T) {
		products := []*models.Product{
			{Price: 100, Quantity: 5},
			{Price: 2.5, Quantity: 4},
		}

		stats := service.ComputeStats(products, 10)

		assert.Equal(t, 2, stats.TotalProducts)
		assert.InDelta(t, 510.0, stats.TotalValue, 0.001)
	})

	t.Run("Low stock boundary is strict", func(t *testing.T) {
		products := []*models.Product{
			{Quantity: 9},  // low
			{Quantity: 10}, // not low
			{Quantity: 0},  // low and out
		}

		stats := service.ComputeStats(products, 10)

		assert.Equal(t, 2, stats.LowStockCount)
		assert.Equal(t, 1, stats.OutOfStockCount)
	})
}

func TestStockStatusFor(t *testing.T) {
	assert.Equal(t, models.StockStatusOut, service.StockStatusFor(0, 10))
	assert.Equal(t, models.StockStatusLow, service.StockStatusFor(5, 10))
	assert.Equal(t, models.StockStatusLow, service.StockStatusFor(9, 10))
	assert.Equal(t, models.StockStatusIn, service.StockStatusFor(10, 10))
	assert.Equal(t, models.StockStatusIn, service.StockStatusFor(11, 10))
}

func TestListProducts(t *testing.T) {
	productService, mockRepo, _ := newTestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("Success - filters and annotates stock status", func(t *testing.T) {
		// Arrange
		mockRepo.On("ListProducts", mock.Anything, ownerID).Return([]*models.Product{
			{Name: "Widget", Category: "Electronics", Price: 100, Quantity: 5},
			{Name: "Shirt", Category: "Clothing", Price: 20, Quantity: 50},
		}, nil).Once()

		// Act
		list, err := productService.ListProducts(ctx, ownerID, models.ListProductsQuery{Search: "wid", Category: "all"})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		assert.Equal(t, 1, list.FilteredCount)
		require.Len(t, list.Products, 1)
		assert.Equal(t, "Widget", list.Products[0].Name)
		assert.Equal(t, models.StockStatusLow, list.Products[0].StockStatus)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - store error surfaces verbatim", func(t *testing.T) {
		// Arrange
		storeErr := errors.New("connection refused")
		mockRepo.On("ListProducts", mock.Anything, ownerID).Return(nil, storeErr).Once()

		// Act
		list, err := productService.ListProducts(ctx, ownerID, models.ListProductsQuery{})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, list)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeStore, appErr.Code)
		assert.Equal(t, "connection refused", appErr.Message)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	req := &models.ProductRequest{
		Name:     "Widget",
		Price:    99.99,
		Quantity: 10,
		Category: "Electronics",
		ImageURL: "https://example.com/widget.jpg",
	}

	t.Run("Success - create and invalidate stats", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newTestService(t)
		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == req.Name && p.OwnerID == ownerID && p.ImageURL == req.ImageURL
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "dashboard_stats:"+ownerID.String()).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, ownerID, req)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, models.StockStatusIn, product.StockStatus)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Rejects category outside the configured set", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newTestService(t)
		badReq := *req
		badReq.Category = "Spaceships"

		// Act
		product, err := productService.CreateProduct(ctx, ownerID, &badReq)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Rejects name that sanitizes to empty", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newTestService(t)
		badReq := *req
		badReq.Name = "<script>alert(1)</script>"

		// Act
		product, err := productService.CreateProduct(ctx, ownerID, &badReq)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)
		mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Clears an invalid image URL instead of storing it broken", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newTestService(t)
		badReq := *req
		badReq.ImageURL = "not a url"

		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.ImageURL == ""
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, ownerID, &badReq)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, product.ImageURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - store error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newTestService(t)
		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(errors.New("duplicate key value")).Once()

		// Act
		product, err := productService.CreateProduct(ctx, ownerID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeStore, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	req := &models.ProductRequest{
		Name:     "Widget v2",
		Price:    149.99,
		Quantity: 3,
		Category: "Electronics",
	}

	t.Run("Success - full field replacement", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newTestService(t)
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.ID == productID && p.OwnerID == ownerID && p.Name == "Widget v2"
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, ownerID, productID, req)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, models.StockStatusLow, product.StockStatus)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - unknown id maps to not found", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newTestService(t)
		mockRepo.On("UpdateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(sql.ErrNoRows).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, ownerID, productID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newTestService(t)
		mockRepo.On("DeleteProduct", mock.Anything, productID, ownerID).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		err := productService.DeleteProduct(ctx, ownerID, productID)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - transport error", func(t *testing.T) {
		// Arrange
		productService, mockRepo, _ := newTestService(t)
		mockRepo.On("DeleteProduct", mock.Anything, productID, ownerID).Return(errors.New("network unreachable")).Once()

		// Act
		err := productService.DeleteProduct(ctx, ownerID, productID)

		// Assert
		assert.Error(t, err)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "network unreachable", appErr.Message)
		mockRepo.AssertExpectations(t)
	})
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	statsKey := "dashboard_stats:" + ownerID.String()

	t.Run("Cache miss computes from the full set and caches", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newTestService(t)
		mockCache.On("Get", mock.Anything, statsKey, mock.Anything).Return(false, nil).Once()
		mockRepo.On("ListProducts", mock.Anything, ownerID).Return([]*models.Product{
			{Price: 100, Quantity: 5},
			{Price: 10, Quantity: 0},
		}, nil).Once()
		mockCache.On("Set", mock.Anything, statsKey, mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		stats, err := productService.DashboardStats(ctx, ownerID)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 2, stats.TotalProducts)
		assert.InDelta(t, 500.0, stats.TotalValue, 0.001)
		assert.Equal(t, 2, stats.LowStockCount)
		assert.Equal(t, 1, stats.OutOfStockCount)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Cache hit skips the store", func(t *testing.T) {
		// Arrange
		productService, mockRepo, mockCache := newTestService(t)
		mockCache.On("Get", mock.Anything, statsKey, mock.Anything).Run(func(args mock.Arguments) {
			stats := args.Get(2).(*models.DashboardStats)
			stats.TotalProducts = 7
			stats.TotalValue = 1234
		}).Return(true, nil).Once()

		// Act
		stats, err := productService.DashboardStats(ctx, ownerID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 7, stats.TotalProducts)
		mockRepo.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})
}

func TestSuggestedImages(t *testing.T) {
	productService, _, _ := newTestService(t)

	t.Run("Known category returns its own set", func(t *testing.T) {
		images := productService.SuggestedImages("Clothing")
		assert.Len(t, images, 3)
		assert.NotEqual(t, models.SuggestedImages["Electronics"], images)
	})

	t.Run("Unknown category falls back to Electronics", func(t *testing.T) {
		images := productService.SuggestedImages("Automotive")
		assert.Equal(t, models.SuggestedImages["Electronics"], images)
	})
}

func TestCategories(t *testing.T) {
	productService, _, _ := newTestService(t)
	assert.Len(t, productService.Categories(), 10)
}
