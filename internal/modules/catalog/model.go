package catalog

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

// Seasons is the set of seasons a product is sold in.
type Seasons []string

// Contains reports whether season is one of the product's seasons.
func (s Seasons) Contains(season string) bool {
	return slices.Contains(s, season)
}

// Product is one item of the shop catalog.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Seasons  Seasons         `json:"season"`
}

// UnmarshalJSON accepts the legacy "main-category" key used by older catalog
// files. "category" wins when both are present.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int             `json:"id"`
		Name         string          `json:"name"`
		Price        decimal.Decimal `json:"price"`
		Category     string          `json:"category"`
		MainCategory string          `json:"main-category"`
		Seasons      Seasons         `json:"season"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	category := raw.Category
	if category == "" {
		category = raw.MainCategory
	}
	*p = Product{
		ID:       raw.ID,
		Name:     raw.Name,
		Price:    raw.Price,
		Category: category,
		Seasons:  raw.Seasons,
	}
	return nil
}

// ProductList is the result of a list request.
type ProductList struct {
	Version     string    `json:"version"`
	FilterKey   string    `json:"filter_key,omitempty"`
	FilterValue string    `json:"filter_value,omitempty"`
	SortKey     string    `json:"sort_key,omitempty"`
	Count       int       `json:"count"`
	Products    []Product `json:"products"`
}
