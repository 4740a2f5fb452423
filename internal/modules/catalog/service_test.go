package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data   map[string][]byte
	gets   int
	failOn error
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	if c.failOn != nil {
		return false, c.failOn
	}
	data, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	if c.failOn != nil {
		return c.failOn
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func loadedService(t *testing.T, cache ViewCache) (Service, *stubRepo) {
	t.Helper()
	repo := &stubRepo{products: sampleProducts()}
	store := NewStore(repo)
	_, err := store.Load(context.Background())
	require.NoError(t, err)
	return NewService(store, cache), repo
}

func TestService_ListProducts(t *testing.T) {
	svc, _ := loadedService(t, nil)

	list, err := svc.ListProducts(context.Background(), ListQuery{
		FilterKey:   "season",
		FilterValue: "fall",
		SortKey:     "price_desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 6}, ids(list.Products))
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, "season", list.FilterKey)
	assert.Equal(t, "fall", list.FilterValue)
	assert.Equal(t, "price_desc", list.SortKey)
	assert.NotEmpty(t, list.Version)
}

func TestService_ListProducts_MalformedInputIsPermissive(t *testing.T) {
	svc, _ := loadedService(t, nil)

	list, err := svc.ListProducts(context.Background(), ListQuery{
		FilterKey:   "colour",
		FilterValue: "red",
		SortKey:     "random",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(list.Products))
	assert.Empty(t, list.FilterKey)
	assert.Empty(t, list.FilterValue)
	assert.Empty(t, list.SortKey)

	list, err = svc.ListProducts(context.Background(), ListQuery{FilterKey: "category"})
	require.NoError(t, err)
	assert.Empty(t, list.Products)
}

func TestService_ListProducts_UsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc, _ := loadedService(t, cache)
	q := ListQuery{FilterKey: "category", FilterValue: "top", SortKey: "name_asc"}

	first, err := svc.ListProducts(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, cache.data, 1)

	second, err := svc.ListProducts(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, ids(first.Products), ids(second.Products))
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, 2, cache.gets)
}

func TestService_ListProducts_ReloadChangesCacheKey(t *testing.T) {
	cache := newMemoryCache()
	svc, repo := loadedService(t, cache)
	q := ListQuery{SortKey: "name_asc"}

	before, err := svc.ListProducts(context.Background(), q)
	require.NoError(t, err)

	repo.products = repo.products[:1]
	_, err = svc.Reload(context.Background())
	require.NoError(t, err)

	after, err := svc.ListProducts(context.Background(), q)
	require.NoError(t, err)
	assert.NotEqual(t, before.Version, after.Version)
	assert.Equal(t, []int{1}, ids(after.Products))
	assert.Len(t, cache.data, 2)
}

func TestService_ListProducts_CacheFailureFallsThrough(t *testing.T) {
	cache := newMemoryCache()
	cache.failOn = errors.New("connection refused")
	svc, _ := loadedService(t, cache)

	list, err := svc.ListProducts(context.Background(), ListQuery{SortKey: "price_asc"})
	require.NoError(t, err)
	assert.Equal(t, 6, list.Count)
}

func TestService_GetProduct(t *testing.T) {
	svc, _ := loadedService(t, nil)

	p, err := svc.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Coat", p.Name)

	_, err = svc.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_NotLoaded(t *testing.T) {
	svc := NewService(NewStore(&stubRepo{}), nil)

	_, err := svc.ListProducts(context.Background(), ListQuery{})
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	_, err = svc.GetProduct(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	_, err = svc.Snapshot()
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
}
