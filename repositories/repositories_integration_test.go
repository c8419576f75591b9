package repositories_test

import (
	"context"
	"math"
	"os"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"glamar-shop/config"
	"glamar-shop/models"
	"glamar-shop/repositories"
)

// openTestDB migrates the database named by TEST_DATABASE_URL and empties
// the mutable tables. The seeded catalog is left in place.
func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping PostgreSQL repository tests: TEST_DATABASE_URL environment variable not set")
	}

	c := qt.New(t)
	c.Assert(config.RunMigrations(dsn), qt.IsNil)

	pool, err := pgxpool.New(context.Background(), dsn)
	c.Assert(err, qt.IsNil)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE users, cart, contacts RESTART IDENTITY`)
	c.Assert(err, qt.IsNil)
	return pool
}

func TestUserRepository(t *testing.T) {
	pool := openTestDB(t)
	c := qt.New(t)
	ctx := context.Background()
	repo := repositories.NewUserRepository(pool)

	user := &models.User{Email: "ada@example.com", PasswordHash: "hash-1"}
	c.Assert(repo.Create(ctx, user), qt.IsNil)
	c.Assert(user.ID, qt.Not(qt.Equals), 0)
	c.Assert(user.CreatedAt.IsZero(), qt.IsFalse)

	err := repo.Create(ctx, &models.User{Email: "ada@example.com", PasswordHash: "hash-2"})
	c.Assert(errors.Is(err, repositories.ErrDuplicate), qt.IsTrue)

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	c.Assert(err, qt.IsNil)
	c.Assert(found.PasswordHash, qt.Equals, "hash-1")

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	c.Assert(err, qt.Equals, repositories.ErrNotFound)
}

func TestProductRepository(t *testing.T) {
	pool := openTestDB(t)
	c := qt.New(t)
	ctx := context.Background()
	repo := repositories.NewProductRepository(pool)

	all, err := repo.FindAll(ctx, "")
	c.Assert(err, qt.IsNil)
	c.Assert(len(all) > 0, qt.IsTrue)
	for i := 1; i < len(all); i++ {
		c.Assert(all[i-1].ID < all[i].ID, qt.IsTrue)
	}

	makeup, err := repo.FindAll(ctx, "makeup")
	c.Assert(err, qt.IsNil)
	for _, p := range makeup {
		c.Assert(p.Category, qt.Equals, "makeup")
	}

	none, err := repo.FindAll(ctx, "MAKEUP")
	c.Assert(err, qt.IsNil)
	c.Assert(none, qt.HasLen, 0)
}

func TestCartRepository(t *testing.T) {
	pool := openTestDB(t)
	c := qt.New(t)
	ctx := context.Background()
	products, err := repositories.NewProductRepository(pool).FindAll(ctx, "")
	c.Assert(err, qt.IsNil)
	c.Assert(len(products) >= 2, qt.IsTrue)

	repo := repositories.NewCartRepository(pool)
	first, second := products[0], products[1]

	c.Assert(repo.Add(ctx, first.ID, 2), qt.IsNil)
	c.Assert(repo.Add(ctx, first.ID, 3), qt.IsNil)
	c.Assert(repo.Add(ctx, second.ID, 1), qt.IsNil)

	lines, err := repo.Lines(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.DeepEquals, []models.CartLine{
		{ID: first.ID, Name: first.Name, Price: first.Price, ImageURL: first.ImageURL, Quantity: 5},
		{ID: second.ID, Name: second.Name, Price: second.Price, ImageURL: second.ImageURL, Quantity: 1},
	})

	err = repo.Add(ctx, 999999, 1)
	c.Assert(errors.Is(err, repositories.ErrForeignKey), qt.IsTrue)

	c.Assert(repo.Add(ctx, second.ID, math.MaxInt32-1), qt.IsNil)
	err = repo.Add(ctx, second.ID, 5)
	c.Assert(errors.Is(err, repositories.ErrOutOfRange), qt.IsTrue)
}

func TestCartRepositoryConcurrentAdds(t *testing.T) {
	pool := openTestDB(t)
	c := qt.New(t)
	ctx := context.Background()
	products, err := repositories.NewProductRepository(pool).FindAll(ctx, "")
	c.Assert(err, qt.IsNil)

	repo := repositories.NewCartRepository(pool)
	productID := products[0].ID

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Add(ctx, productID, 1)
		}()
	}
	wg.Wait()

	lines, err := repo.Lines(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.HasLen, 1)
	c.Assert(lines[0].Quantity, qt.Equals, 20)
}

func TestContactRepository(t *testing.T) {
	pool := openTestDB(t)
	c := qt.New(t)
	ctx := context.Background()
	repo := repositories.NewContactRepository(pool)

	msg := &models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	c.Assert(repo.Create(ctx, msg), qt.IsNil)
	c.Assert(msg.ID, qt.Equals, 1)

	var count int
	c.Assert(pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count), qt.IsNil)
	c.Assert(count, qt.Equals, 1)
}
