package swell

import (
	"context"
	"net/http"
	"strings"
)

// ProductFilters narrows a product list. Category and price filters combine
// with free-form attribute filters under the $filters query key.
type ProductFilters struct {
	// Categories restricts results to products in the given category ids
	// or slugs.
	Categories []string
	// PriceRange restricts results to a [min, max] price window.
	PriceRange *[2]float64
	// Attributes holds attribute-value filters keyed by attribute id,
	// e.g. {"brand": []string{"acme"}}.
	Attributes map[string]any
}

// GetProductOptions configures a single-product fetch.
type GetProductOptions struct {
	// Expand names related resources to include in the response, e.g.
	// "variants" or "categories".
	Expand []string
	SessionOptions
}

// ListProductsOptions configures a paginated product list.
type ListProductsOptions struct {
	Page    int
	Limit   int
	Sort    string
	Filters *ProductFilters
	SessionOptions
}

// GetProduct fetches one product by id or slug; the two are indistinguishable
// to the client and resolved server-side.
func (c *Client) GetProduct(ctx context.Context, id string, opts *GetProductOptions) (*Product, error) {
	if opts == nil {
		opts = &GetProductOptions{}
	}

	ro := &RequestOptions{
		SessionToken: opts.SessionToken,
		Locale:       opts.Locale,
		Currency:     opts.Currency,
	}
	if len(opts.Expand) > 0 {
		ro.Query = ro.Query.Add("expand", strings.Join(opts.Expand, ","))
	}

	return doRequest[Product](ctx, c, http.MethodGet, "products/"+id, ro)
}

// ListProducts returns a paginated list of the store's products, optionally
// filtered by category, price range, and attribute values.
func (c *Client) ListProducts(ctx context.Context, opts *ListProductsOptions) (*PaginatedResponse[Product], error) {
	if opts == nil {
		opts = &ListProductsOptions{}
	}

	var q Query
	if filters := opts.Filters.queryValue(); len(filters) > 0 {
		q = q.Add("$filters", filters)
	}
	if opts.Limit > 0 {
		q = q.Add("limit", opts.Limit)
	}
	if opts.Page > 0 {
		q = q.Add("page", opts.Page)
	}
	if opts.Sort != "" {
		q = q.Add("sort", opts.Sort)
	}

	ro := &RequestOptions{
		Query:        q,
		SessionToken: opts.SessionToken,
		Locale:       opts.Locale,
		Currency:     opts.Currency,
	}

	return doRequest[PaginatedResponse[Product]](ctx, c, http.MethodGet, "products", ro)
}

func (f *ProductFilters) queryValue() map[string]any {
	if f == nil {
		return nil
	}

	out := make(map[string]any, len(f.Attributes)+2)
	for k, v := range f.Attributes {
		out[k] = v
	}
	if len(f.Categories) > 0 {
		out["category"] = f.Categories
	}
	if f.PriceRange != nil {
		out["price"] = f.PriceRange[:]
	}
	return out
}
