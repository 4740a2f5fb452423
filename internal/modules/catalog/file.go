package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed seed/products.json
var seedFS embed.FS

const seedPath = "seed/products.json"

type fileRepo struct{ path string }

// NewFileRepository reads the catalog from a JSON array of products at path.
// An empty path reads the seed catalog compiled into the binary.
func NewFileRepository(path string) Repository { return &fileRepo{path: path} }

func (r *fileRepo) LoadProducts(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if r.path == "" {
		data, err = seedFS.ReadFile(seedPath)
	} else {
		data, err = os.ReadFile(r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file %q: %w", r.describe(), err)
	}
	return products, nil
}

func (r *fileRepo) describe() string {
	if r.path == "" {
		return seedPath
	}
	return r.path
}
