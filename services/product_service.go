package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"glamar-shop/models"
)

type ProductStore interface {
	FindAll(ctx context.Context, category string) ([]models.Product, error)
}

// ProductService reads the catalog through an optional Redis cache. The
// API never writes products, so entries simply expire after ttl.
type ProductService struct {
	products ProductStore
	cache    *redis.Client
	ttl      time.Duration
	log      logrus.FieldLogger
}

func NewProductService(products ProductStore, cache *redis.Client, ttl time.Duration, log logrus.FieldLogger) *ProductService {
	return &ProductService{products: products, cache: cache, ttl: ttl, log: log}
}

func productCacheKey(category string) string {
	if category == "" {
		return "products_list_all"
	}
	return "products_list_cat:" + category
}

func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	key := productCacheKey(category)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal(cached, &products); err == nil {
				return products, nil
			}
		} else if err != redis.Nil {
			s.log.WithError(err).Warn("product cache read failed")
		}
	}

	products, err := s.products.FindAll(ctx, category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err != nil {
			s.log.WithError(err).Warn("product cache encode failed")
		} else if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.log.WithError(err).Warn("product cache write failed")
		}
	}

	return products, nil
}
