// Package mockstore is an in-process fake of the storefront backend API,
// used by tests and the demo binary. It serves the same wire shapes the SDK
// decodes: snake_case JSON, paginated envelopes, and the standard error
// envelope.
package mockstore

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	swell "github.com/swellstores/swell-sdk"
)

const defaultLimit = 25

// Store holds the catalog served by the fake backend.
type Store struct {
	Key        string
	Products   []swell.Product
	Categories []swell.Category
	Attributes []swell.Attribute
}

// New creates an empty store guarded by the given API key.
func New(key string) *Store {
	return &Store{Key: key}
}

// Handler returns the HTTP handler for the fake API.
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(s.authorize)
		r.Get("/products", s.listProducts)
		r.Get("/products/{id}", s.getProduct)
		r.Get("/categories", s.listCategories)
		r.Get("/categories/{id}", s.getCategory)
		r.Get("/attributes", s.listAttributes)
		r.Get("/attributes/{id}", s.getAttribute)
	})
	return r
}

// authorize enforces basic auth with the store key and issues a session
// token when the caller has none, the way the hosted backend does.
func (s *Store) authorize(next http.Handler) http.Handler {
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte(s.Key))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != expected {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid api key")
			return
		}
		if r.Header.Get("X-Session") == "" {
			w.Header().Set("X-Session", uuid.NewString())
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Store) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paginate(r, s.Products))
}

func (s *Store) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, p := range s.Products {
		if p.ID == id || p.Slug == id {
			if !expands(r, "variants") {
				p.Variants = nil
			}
			if !expands(r, "categories") {
				p.Categories = nil
			}
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "product not found")
}

func (s *Store) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paginate(r, s.Categories))
}

func (s *Store) getCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, c := range s.Categories {
		if c.ID == id || c.Slug == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "category not found")
}

func (s *Store) listAttributes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paginate(r, s.Attributes))
}

func (s *Store) getAttribute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, a := range s.Attributes {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "attribute not found")
}

// expands reports whether the comma-joined expand query parameter names the
// given resource.
func expands(r *http.Request, name string) bool {
	for _, field := range strings.Split(r.URL.Query().Get("expand"), ",") {
		if field == name {
			return true
		}
	}
	return false
}

func paginate[T any](r *http.Request, items []T) swell.PaginatedResponse[T] {
	page := 1
	limit := defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return swell.PaginatedResponse[T]{
		Count:   len(items),
		Results: items[start:end],
		Page:    page,
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var envelope errorEnvelope
	envelope.Error.Code = code
	envelope.Error.Message = message
	writeJSON(w, status, envelope)
}
