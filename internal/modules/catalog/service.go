package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"
)

var ErrCatalogNotLoaded = errors.New("catalog not loaded")

// ViewCache stores rendered product lists between requests.
type ViewCache interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// ListQuery carries the caller's filter and sort choice as raw strings.
type ListQuery struct {
	FilterKey   string `json:"filter_key" schema:"filter_key"`
	FilterValue string `json:"filter_value" schema:"filter_value"`
	SortKey     string `json:"sort_key" schema:"sort_key"`
}

// Snapshot describes a loaded catalog.
type Snapshot struct {
	Version  string    `json:"version"`
	Count    int       `json:"count"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, q ListQuery) (*ProductList, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	Reload(ctx context.Context) (*Snapshot, error)
	Snapshot() (*Snapshot, error)
}

type service struct {
	store *Store
	cache ViewCache
}

// NewService builds the catalog service. A nil cache disables view caching.
func NewService(store *Store, cache ViewCache) Service {
	return &service{store: store, cache: cache}
}

func (s *service) current() (*Catalog, error) {
	c := s.store.Current()
	if c == nil {
		return nil, ErrCatalogNotLoaded
	}
	return c, nil
}

func (s *service) ListProducts(ctx context.Context, q ListQuery) (*ProductList, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}

	spec := FilterSpec{Dimension: ParseFilterDimension(q.FilterKey)}
	if spec.Dimension != FilterNone {
		spec.Value = q.FilterValue
	}
	key := ParseSortKey(q.SortKey)

	cacheKey := listCacheKey(c, spec, key)
	if s.cache != nil {
		var cached ProductList
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Printf("view cache get %s: %v", cacheKey, err)
		} else if hit {
			cacheHits.Inc()
			return &cached, nil
		}
	}

	products := c.Query(spec, key)
	pipelineRuns.WithLabelValues(labelOrNone(string(spec.Dimension)), labelOrNone(string(key))).Inc()
	pipelineResults.Observe(float64(len(products)))

	list := &ProductList{
		Version:     c.Version.String(),
		FilterKey:   string(spec.Dimension),
		FilterValue: spec.Value,
		SortKey:     string(key),
		Count:       len(products),
		Products:    products,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, list); err != nil {
			log.Printf("view cache set %s: %v", cacheKey, err)
		}
	}
	return list, nil
}

func listCacheKey(c *Catalog, spec FilterSpec, key SortKey) string {
	return fmt.Sprintf("products:%s:%s:%s:%s",
		c.Version, labelOrNone(string(spec.Dimension)), url.QueryEscape(spec.Value), labelOrNone(string(key)))
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	p, ok := c.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return &p, nil
}

func (s *service) Reload(ctx context.Context) (*Snapshot, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snapshotOf(c), nil
}

func (s *service) Snapshot() (*Snapshot, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	return snapshotOf(c), nil
}

func snapshotOf(c *Catalog) *Snapshot {
	return &Snapshot{Version: c.Version.String(), Count: c.Len(), LoadedAt: c.LoadedAt}
}
