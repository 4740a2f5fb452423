package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Product{product(1, "A", 1, "top"), product(1, "B", 2, "top")})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNew_RejectsNegativePrice(t *testing.T) {
	p := product(1, "A", 0, "top")
	p.Price = decimal.NewFromInt(-1)
	_, err := New([]Product{p})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCatalog_IsolatedFromCallers(t *testing.T) {
	products := sampleProducts()
	c, err := New(products)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.Version)
	assert.Equal(t, 6, c.Len())

	products[0].Name = "mutated"
	products[2].Seasons[0] = "mutated"

	got, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Shirt", got.Name)

	got, ok = c.Find(3)
	require.True(t, ok)
	assert.Equal(t, Seasons{"spring", "fall", "winter"}, got.Seasons)

	listed := c.Products()
	listed[0].Name = "mutated again"
	again, _ := c.Find(1)
	assert.Equal(t, "Shirt", again.Name)
}

func TestCatalog_FindMissing(t *testing.T) {
	c, err := New(sampleProducts())
	require.NoError(t, err)
	_, ok := c.Find(404)
	assert.False(t, ok)
}

func TestCatalog_Query(t *testing.T) {
	c, err := New(sampleProducts())
	require.NoError(t, err)
	got := c.Query(FilterSpec{Dimension: FilterCategory, Value: "outer"}, SortNameAsc)
	assert.Equal(t, []int{5, 2}, ids(got))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(c.Products()))
}

func TestProduct_UnmarshalLegacyCategory(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"id":7,"name":"Hoodie","price":39.5,"main-category":"top","season":["fall"]}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "top", p.Category)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("39.5")))
	assert.True(t, p.Seasons.Contains("fall"))
	assert.False(t, p.Seasons.Contains("Fall"))

	err = json.Unmarshal([]byte(`{"id":8,"name":"Vest","price":"10","category":"outer","main-category":"top"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "outer", p.Category)
	assert.Empty(t, p.Seasons)
}

func TestFileRepository_Seed(t *testing.T) {
	products, err := NewFileRepository("").LoadProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	c, err := New(products)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Query(FilterSpec{Dimension: FilterCategory, Value: "outer"}, SortNone))
	assert.NotEmpty(t, c.Query(FilterSpec{Dimension: FilterSeason, Value: "winter"}, SortNone))
}

func TestFileRepository_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":1,"name":"Shirt","price":20,"category":"top","season":["summer"]},
		{"id":2,"name":"Coat","price":90,"main-category":"outer","season":["winter"]}
	]`), 0o600))

	products, err := NewFileRepository(path).LoadProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "outer", products[1].Category)
}

func TestFileRepository_Errors(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "missing.json")).LoadProducts(context.Background())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = NewFileRepository(path).LoadProducts(context.Background())
	assert.Error(t, err)
}

type stubRepo struct {
	products []Product
	err      error
}

func (r *stubRepo) LoadProducts(context.Context) ([]Product, error) {
	return r.products, r.err
}

func TestStore_LoadSwapsSnapshot(t *testing.T) {
	repo := &stubRepo{products: sampleProducts()}
	s := NewStore(repo)
	assert.Nil(t, s.Current())

	first, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, s.Current())

	repo.products = repo.products[:2]
	second, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, second.Version)
	assert.Equal(t, 6, first.Len(), "old snapshot is untouched")
	assert.Equal(t, 2, s.Current().Len())
}

func TestStore_FailedLoadKeepsSnapshot(t *testing.T) {
	repo := &stubRepo{products: sampleProducts()}
	s := NewStore(repo)
	first, err := s.Load(context.Background())
	require.NoError(t, err)

	repo.err = errors.New("database down")
	_, err = s.Load(context.Background())
	assert.Error(t, err)
	assert.Same(t, first, s.Current())

	repo.err = nil
	repo.products = []Product{product(1, "A", 1, "top"), product(1, "B", 1, "top")}
	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Same(t, first, s.Current())
}
