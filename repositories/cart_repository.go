package repositories

import (
	"context"

	"glamar-shop/models"
)

type CartRepository struct {
	db DBTX
}

func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// Add inserts a cart row or increments the existing one in a single
// statement, so concurrent adds of the same product never lose an update.
// An unknown product yields ErrForeignKey.
func (r *CartRepository) Add(ctx context.Context, productID, quantity int) error {
	query := `
		INSERT INTO cart (product_id, quantity)
		VALUES ($1, $2)
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`
	_, err := r.db.Exec(ctx, query, productID, quantity)
	return translate(err, "add cart item")
}

// Lines joins every cart row with its product. Rows whose product is gone
// are not returned.
func (r *CartRepository) Lines(ctx context.Context) ([]models.CartLine, error) {
	query := `
		SELECT p.id, p.name, p.price, p.image_url, c.quantity
		FROM cart c
		JOIN products p ON c.product_id = p.id
		ORDER BY p.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "list cart")
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.ID, &line.Name, &line.Price, &line.ImageURL, &line.Quantity); err != nil {
			return nil, translate(err, "scan cart line")
		}
		lines = append(lines, line)
	}

	return lines, translate(rows.Err(), "list cart")
}
