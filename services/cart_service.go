package services

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"glamar-shop/models"
	"glamar-shop/repositories"
)

type CartStore interface {
	Add(ctx context.Context, productID, quantity int) error
	Lines(ctx context.Context) ([]models.CartLine, error)
}

// CartService manages the single shop-wide cart.
type CartService struct {
	cart CartStore
}

func NewCartService(cart CartStore) *CartService {
	return &CartService{cart: cart}
}

func (s *CartService) Add(ctx context.Context, req models.AddToCartRequest) error {
	if req.ProductID == 0 {
		return newValidationError("Product ID is required")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		return newValidationError("Quantity must be a positive integer")
	}
	if quantity > math.MaxInt32 {
		return newValidationError("Quantity is too large")
	}

	// ids outside the INTEGER column range cannot name a product
	if req.ProductID < math.MinInt32 || req.ProductID > math.MaxInt32 {
		return ErrProductNotFound
	}

	if err := s.cart.Add(ctx, req.ProductID, quantity); err != nil {
		switch {
		case errors.Is(err, repositories.ErrForeignKey):
			return ErrProductNotFound
		case errors.Is(err, repositories.ErrOutOfRange):
			return newValidationError("Quantity is too large")
		}
		return err
	}
	return nil
}

func (s *CartService) Items(ctx context.Context) ([]models.CartLine, error) {
	return s.cart.Lines(ctx)
}
