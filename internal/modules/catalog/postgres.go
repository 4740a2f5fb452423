package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository reads the catalog from the products table:
//
//	CREATE TABLE products (
//	    id       INTEGER PRIMARY KEY,
//	    name     TEXT NOT NULL,
//	    price    NUMERIC(12,2) NOT NULL CHECK (price >= 0),
//	    category TEXT NOT NULL,
//	    season   TEXT[] NOT NULL DEFAULT '{}'
//	);
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func scanProduct(scan func(...interface{}) error) (Product, error) {
	var p Product
	var seasons []string
	if err := scan(&p.ID, &p.Name, &p.Price, &p.Category, pq.Array(&seasons)); err != nil {
		return Product{}, err
	}
	p.Seasons = seasons
	return p, nil
}

func (r *postgresRepo) LoadProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, category, season
		FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
