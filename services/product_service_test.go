package services_test

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus/hooks/test"

	"glamar-shop/models"
	"glamar-shop/repositories/memstore"
	"glamar-shop/services"
)

func seededCatalog() []models.Product {
	return []models.Product{
		{Name: "Velvet Lipstick", Price: 18.5, ImageURL: "/img/lipstick.jpg", Category: "makeup"},
		{Name: "Rose Serum", Price: 36.75, ImageURL: "/img/serum.jpg", Category: "skincare"},
		{Name: "Mascara", Price: 24, ImageURL: "/img/mascara.jpg", Category: "makeup"},
		{Name: "Hair Oil", Price: 27.5, ImageURL: "/img/oil.jpg", Category: "haircare"},
	}
}

func TestProductList(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := memstore.New(seededCatalog()...)
	products := services.NewProductService(store.Products, nil, time.Minute, logger)

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "no filter returns every product", want: []string{"Velvet Lipstick", "Rose Serum", "Mascara", "Hair Oil"}},
		{name: "exact category", category: "makeup", want: []string{"Velvet Lipstick", "Mascara"}},
		{name: "category match is case sensitive", category: "Makeup", want: []string{}},
		{name: "unknown category is empty", category: "shoes", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			got, err := products.List(context.Background(), tt.category)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.IsNotNil)

			names := []string{}
			for _, p := range got {
				names = append(names, p.Name)
				if tt.category != "" {
					c.Assert(p.Category, qt.Equals, tt.category)
				}
			}
			c.Assert(names, qt.DeepEquals, tt.want)
		})
	}
}

func TestProductListWithoutCacheAlwaysHitsStore(t *testing.T) {
	c := qt.New(t)
	logger, _ := test.NewNullLogger()
	store := memstore.New(seededCatalog()...)
	products := services.NewProductService(store.Products, nil, time.Minute, logger)

	for range 3 {
		_, err := products.List(context.Background(), "")
		c.Assert(err, qt.IsNil)
	}
	c.Assert(store.Products.Calls(), qt.Equals, 3)
}
