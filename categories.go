package swell

import (
	"context"
	"net/http"
	"strings"
)

// GetCategoryOptions configures a single-category fetch. Expand accepts the
// server-defined keys "parent", "products", and "top".
type GetCategoryOptions struct {
	Expand []string
	SessionOptions
}

// ListCategoriesOptions configures a paginated category list.
type ListCategoriesOptions struct {
	Page  int
	Limit int
	Sort  string
	SessionOptions
}

// GetCategory fetches one category by id or slug.
func (c *Client) GetCategory(ctx context.Context, id string, opts *GetCategoryOptions) (*Category, error) {
	if opts == nil {
		opts = &GetCategoryOptions{}
	}

	ro := &RequestOptions{
		SessionToken: opts.SessionToken,
		Locale:       opts.Locale,
		Currency:     opts.Currency,
	}
	if len(opts.Expand) > 0 {
		ro.Query = ro.Query.Add("expand", strings.Join(opts.Expand, ","))
	}

	return doRequest[Category](ctx, c, http.MethodGet, "categories/"+id, ro)
}

// ListCategories returns a paginated list of the store's categories.
func (c *Client) ListCategories(ctx context.Context, opts *ListCategoriesOptions) (*PaginatedResponse[Category], error) {
	if opts == nil {
		opts = &ListCategoriesOptions{}
	}

	var q Query
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

	return doRequest[PaginatedResponse[Category]](ctx, c, http.MethodGet, "categories", ro)
}
