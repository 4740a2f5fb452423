package catalog

import (
	"slices"
	"strings"
)

// FilterDimension selects which product attribute a filter looks at.
type FilterDimension string

const (
	FilterNone     FilterDimension = ""
	FilterCategory FilterDimension = "category"
	FilterSeason   FilterDimension = "season"
)

// ParseFilterDimension maps a query or menu value to a dimension.
// Anything it does not recognise means no filtering.
func ParseFilterDimension(s string) FilterDimension {
	switch FilterDimension(s) {
	case FilterCategory:
		return FilterCategory
	case FilterSeason:
		return FilterSeason
	default:
		return FilterNone
	}
}

// FilterSpec is a (dimension, value) pair selecting a subset of products.
type FilterSpec struct {
	Dimension FilterDimension
	Value     string
}

// SortKey names the ordering applied after filtering.
type SortKey string

const (
	SortNone      SortKey = ""
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

var sortKeyAliases = map[string]SortKey{
	"name_asc":         SortNameAsc,
	"name_ascending":   SortNameAsc,
	"name_desc":        SortNameDesc,
	"name_descending":  SortNameDesc,
	"price_asc":        SortPriceAsc,
	"price_ascending":  SortPriceAsc,
	"price_desc":       SortPriceDesc,
	"price_descending": SortPriceDesc,
}

// ParseSortKey maps a query or menu value to a sort key.
// Unknown keys fall back to SortNone.
func ParseSortKey(s string) SortKey {
	if k, ok := sortKeyAliases[s]; ok {
		return k
	}
	return SortNone
}

// FilterAndSort filters records by spec and then orders the survivors by key.
// The input slice is never modified; the result is always a new slice.
func FilterAndSort(records []Product, spec FilterSpec, key SortKey) []Product {
	return applySort(applyFilter(records, spec), key)
}

func applyFilter(records []Product, spec FilterSpec) []Product {
	var keep func(Product) bool
	switch spec.Dimension {
	case FilterCategory:
		keep = func(p Product) bool { return p.Category == spec.Value }
	case FilterSeason:
		keep = func(p Product) bool { return p.Seasons.Contains(spec.Value) }
	default:
		return slices.Clone(nonNil(records))
	}

	filtered := make([]Product, 0, len(records))
	for _, p := range records {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func applySort(records []Product, key SortKey) []Product {
	result := slices.Clone(nonNil(records))

	var compare func(a, b Product) int
	switch key {
	case SortNameAsc:
		compare = byName
	case SortNameDesc:
		compare = descending(byName)
	case SortPriceAsc:
		compare = byPrice
	case SortPriceDesc:
		compare = descending(byPrice)
	default:
		return result
	}

	slices.SortStableFunc(result, compare)
	return result
}

func byName(a, b Product) int {
	return strings.Compare(a.Name, b.Name)
}

func byPrice(a, b Product) int {
	return a.Price.Cmp(b.Price)
}

// descending reverses compare; under a stable sort equal keys still keep
// their input order.
func descending(compare func(a, b Product) int) func(a, b Product) int {
	return func(a, b Product) int { return compare(b, a) }
}

func nonNil(records []Product) []Product {
	if records == nil {
		return []Product{}
	}
	return records
}
