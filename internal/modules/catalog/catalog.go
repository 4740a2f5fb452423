package catalog

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrNegativePrice   = errors.New("negative product price")
)

// Catalog is an immutable snapshot of the product list. Nothing in this
// package writes to a Catalog after New returns it.
type Catalog struct {
	Version  uuid.UUID
	LoadedAt time.Time

	products []Product
	byID     map[int]int
}

// New validates products and builds a snapshot from a private copy of them.
func New(products []Product) (*Catalog, error) {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d has price %s", ErrNegativePrice, p.ID, p.Price)
		}
		byID[p.ID] = i
	}

	owned := make([]Product, len(products))
	for i, p := range products {
		p.Seasons = slices.Clone(p.Seasons)
		owned[i] = p
	}

	return &Catalog{
		Version:  uuid.New(),
		LoadedAt: time.Now().UTC(),
		products: owned,
		byID:     byID,
	}, nil
}

// Products returns the snapshot's products in load order. The slice is a
// copy; season slices are shared with the snapshot and must not be written.
func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

// Find looks a product up by id.
func (c *Catalog) Find(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	p := c.products[i]
	p.Seasons = slices.Clone(p.Seasons)
	return p, true
}

func (c *Catalog) Len() int { return len(c.products) }

// Query runs the filter-sort pipeline over the snapshot.
func (c *Catalog) Query(spec FilterSpec, key SortKey) []Product {
	return FilterAndSort(c.products, spec, key)
}
