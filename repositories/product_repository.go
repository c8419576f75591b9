package repositories

import (
	"context"

	"glamar-shop/models"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll lists products ordered by id. A non-empty category restricts the
// result to exact, case-sensitive matches.
func (r *ProductRepository) FindAll(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT id, name, price, image_url, category FROM products`
	args := []any{}

	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "list products")
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Category); err != nil {
			return nil, translate(err, "scan product")
		}
		products = append(products, p)
	}

	return products, translate(rows.Err(), "list products")
}
