package repository

import (
	"context"
	"database/sql"

	"inventory-manager/internal/models"
	"inventory-manager/internal/utils"

	"github.com/google/uuid"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, ownerID uuid.UUID) ([]*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id, ownerID uuid.UUID) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// ListProducts returns the owner's full product set, newest first.
func (r *productRepository) ListProducts(ctx context.Context, ownerID uuid.UUID) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, owner_id, name, price, quantity, category, description, image_url, created_at, updated_at
		FROM products
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, ownerID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.OwnerID, &product.Name, &product.Price, &product.Quantity,
			&product.Category, &product.Description, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (owner_id, name, price, quantity, category, description, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.OwnerID, product.Name, product.Price, product.Quantity,
		product.Category, product.Description, product.ImageURL).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// UpdateProduct replaces every editable field of the row. Owner scoping
// doubles as the existence check: sql.ErrNoRows covers both a missing id
// and someone else's product.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, price = $2, quantity = $3, category = $4, description = $5, image_url = $6, updated_at = NOW()
		WHERE id = $7 AND owner_id = $8
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Price, product.Quantity, product.Category,
		product.Description, product.ImageURL, product.ID, product.OwnerID).Scan(&product.CreatedAt, &product.UpdatedAt)
}

// DeleteProduct is idempotent: deleting an already-deleted row affects
// zero rows and is still success.
func (r *productRepository) DeleteProduct(ctx context.Context, id, ownerID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM products WHERE id = $1 AND owner_id = $2`

	_, err := r.DB.ExecContext(dbCtx, query, id, ownerID)

	return err
}
