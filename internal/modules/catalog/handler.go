package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
)

const versionHeader = "X-Catalog-Version"

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func decodeListQuery(values url.Values) (ListQuery, error) {
	var q ListQuery
	err := decoder.Decode(&q, values)
	return q, err
}

// Handler exposes catalog HTTP endpoints.
type Handler struct {
	service   Service
	adminOnly func(http.Handler) http.Handler
}

// NewHandler builds the JSON API. adminOnly guards the reload endpoint.
// A nil adminOnly rejects every reload.
func NewHandler(service Service, adminOnly func(http.Handler) http.Handler) *Handler {
	if adminOnly == nil {
		adminOnly = denyAll
	}
	return &Handler{service: service, adminOnly: adminOnly}
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusForbidden, map[string]string{"error": "admin access is not configured"})
	})
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/categories/{category}/products", h.listByDimension(FilterCategory, "category"))
		r.Get("/seasons/{season}/products", h.listByDimension(FilterSeason, "season"))
		r.Get("/snapshot", h.snapshot)
		r.With(h.adminOnly).Post("/reload", h.reload)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q, err := decodeListQuery(r.URL.Query())
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.writeList(w, r, q)
}

func (h *Handler) listByDimension(dim FilterDimension, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := decodeListQuery(r.URL.Query())
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		q.FilterKey = string(dim)
		q.FilterValue = chi.URLParam(r, param)
		h.writeList(w, r, q)
	}
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, q ListQuery) {
	list, err := h.service.ListProducts(r.Context(), q)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set(versionHeader, list.Version)
	respond(w, http.StatusOK, list)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product id must be an integer"})
		return
	}
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot()
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set(versionHeader, snap.Version)
	respond(w, http.StatusOK, snap)
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Reload(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set(versionHeader, snap.Version)
	respond(w, http.StatusOK, snap)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": ErrProductNotFound.Error()})
	case errors.Is(err, ErrCatalogNotLoaded):
		respond(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
