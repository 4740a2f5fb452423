package catalog

import "context"

// Repository is the source a catalog snapshot is loaded from.
type Repository interface {
	LoadProducts(ctx context.Context) ([]Product, error)
}
