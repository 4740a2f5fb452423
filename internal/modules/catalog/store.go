package catalog

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
)

// Store holds the current catalog snapshot. Loading replaces the snapshot as
// a whole; readers keep whatever snapshot they already hold.
type Store struct {
	repo    Repository
	current atomic.Pointer[Catalog]
}

func NewStore(repo Repository) *Store { return &Store{repo: repo} }

// Load reads the repository and swaps in a fresh snapshot. On error the
// previous snapshot stays current.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	s.current.Store(c)
	catalogProducts.Set(float64(c.Len()))
	log.Printf("catalog %s loaded with %d products", c.Version, c.Len())
	return c, nil
}

// Current returns the current snapshot, or nil before the first Load.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}
