// Package memstore holds in-memory repositories that enforce the same
// constraints as the Postgres schema: unique user emails, one cart row per
// product, a cart foreign key onto products and an inner-join cart view.
package memstore

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"glamar-shop/models"
	"glamar-shop/repositories"
)

type Store struct {
	Users    *Users
	Products *Products
	Cart     *Cart
	Contacts *Contacts
}

func New(products ...models.Product) *Store {
	p := &Products{byID: map[int]models.Product{}}
	p.Seed(products...)
	return &Store{
		Users:    &Users{byEmail: map[string]models.User{}},
		Products: p,
		Cart:     &Cart{products: p, rows: map[int]int{}},
		Contacts: &Contacts{},
	}
}

type Users struct {
	mu      sync.Mutex
	nextID  int
	byEmail map[string]models.User
}

func (u *Users) Create(_ context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.byEmail[user.Email]; ok {
		return errors.Wrap(repositories.ErrDuplicate, "insert user: users_email_key")
	}
	u.nextID++
	user.ID = u.nextID
	user.CreatedAt = time.Now()
	u.byEmail[user.Email] = *user
	return nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

type Products struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]models.Product
	calls  int
}

// Seed stores products, assigning ids to those without one.
func (p *Products) Seed(products ...models.Product) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, product := range products {
		if product.ID == 0 {
			p.nextID++
			product.ID = p.nextID
		} else if product.ID > p.nextID {
			p.nextID = product.ID
		}
		p.byID[product.ID] = product
	}
}

func (p *Products) Delete(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.byID, id)
}

func (p *Products) FindAll(_ context.Context, category string) ([]models.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	products := []models.Product{}
	for _, product := range p.byID {
		if category == "" || product.Category == category {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Calls reports how many times FindAll has run.
func (p *Products) Calls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.calls
}

func (p *Products) get(id int) (models.Product, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	product, ok := p.byID[id]
	return product, ok
}

type Cart struct {
	mu       sync.Mutex
	products *Products
	rows     map[int]int
}

func (c *Cart) Add(_ context.Context, productID, quantity int) error {
	if _, ok := c.products.get(productID); !ok {
		return errors.Wrap(repositories.ErrForeignKey, "add cart item: cart_product_id_fkey")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the cart.quantity column is a 32-bit INTEGER
	if int64(c.rows[productID])+int64(quantity) > math.MaxInt32 {
		return errors.Wrap(repositories.ErrOutOfRange, "add cart item: integer out of range")
	}
	c.rows[productID] += quantity
	return nil
}

func (c *Cart) Lines(_ context.Context) ([]models.CartLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := []models.CartLine{}
	for productID, quantity := range c.rows {
		product, ok := c.products.get(productID)
		if !ok {
			continue
		}
		lines = append(lines, models.CartLine{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			ImageURL: product.ImageURL,
			Quantity: quantity,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}

// Rows returns the raw cart rows, including those whose product is gone.
func (c *Cart) Rows() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, 0, len(c.rows))
	for productID, quantity := range c.rows {
		items = append(items, models.CartItem{ProductID: productID, Quantity: quantity})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}

type Contacts struct {
	mu       sync.Mutex
	messages []models.ContactMessage
}

func (c *Contacts) Create(_ context.Context, msg *models.ContactMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg.ID = len(c.messages) + 1
	msg.CreatedAt = time.Now()
	c.messages = append(c.messages, *msg)
	return nil
}

func (c *Contacts) Messages() []models.ContactMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ContactMessage(nil), c.messages...)
}
