package catalog

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type sortOption struct {
	Key   string
	Label string
}

var sortOptions = []sortOption{
	{Key: string(SortNone), Label: "catalog order"},
	{Key: string(SortNameAsc), Label: "name, A to Z"},
	{Key: string(SortNameDesc), Label: "name, Z to A"},
	{Key: string(SortPriceAsc), Label: "price, low to high"},
	{Key: string(SortPriceDesc), Label: "price, high to low"},
}

type indexPage struct {
	Title       string
	Query       ListQuery
	SortOptions []sortOption
	List        *ProductList
}

type productPage struct {
	Title   string
	Product *Product
}

// Pages renders the HTML storefront.
type Pages struct{ service Service }

func NewPages(service Service) *Pages { return &Pages{service: service} }

func (p *Pages) RegisterRoutes(r *chi.Mux) {
	r.Get("/", p.index)
	r.Get("/category/{category}", p.indexBy(FilterCategory, "category"))
	r.Get("/season/{season}", p.indexBy(FilterSeason, "season"))
	r.Get("/product/{id}", p.product)
}

func (p *Pages) index(w http.ResponseWriter, r *http.Request) {
	q, err := decodeListQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.renderIndex(w, r, q)
}

func (p *Pages) indexBy(dim FilterDimension, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := decodeListQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		q.FilterKey = string(dim)
		q.FilterValue = chi.URLParam(r, param)
		p.renderIndex(w, r, q)
	}
}

func (p *Pages) renderIndex(w http.ResponseWriter, r *http.Request, q ListQuery) {
	list, err := p.service.ListProducts(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	q.FilterKey, q.FilterValue, q.SortKey = list.FilterKey, list.FilterValue, list.SortKey
	render(w, http.StatusOK, "index", indexPage{
		Title:       "Catalog",
		Query:       q,
		SortOptions: sortOptions,
		List:        list,
	})
}

func (p *Pages) product(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		render(w, http.StatusNotFound, "product", productPage{Title: "Not found"})
		return
	}
	product, err := p.service.GetProduct(r.Context(), id)
	switch {
	case errors.Is(err, ErrProductNotFound):
		render(w, http.StatusNotFound, "product", productPage{Title: "Not found"})
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		render(w, http.StatusOK, "product", productPage{Title: product.Name, Product: product})
	}
}

func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
