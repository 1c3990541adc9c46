package swell

import (
	"context"
	"net/http"
)

// GetAttributeOptions configures a single-attribute fetch.
type GetAttributeOptions struct {
	SessionOptions
}

// ListAttributesOptions configures a paginated attribute list.
type ListAttributesOptions struct {
	Page  int
	Limit int
	Sort  string
	SessionOptions
}

// GetAttribute fetches one attribute by id.
func (c *Client) GetAttribute(ctx context.Context, id string, opts *GetAttributeOptions) (*Attribute, error) {
	if opts == nil {
		opts = &GetAttributeOptions{}
	}

	ro := &RequestOptions{
		SessionToken: opts.SessionToken,
		Locale:       opts.Locale,
		Currency:     opts.Currency,
	}

	return doRequest[Attribute](ctx, c, http.MethodGet, "attributes/"+id, ro)
}

// ListAttributes returns a paginated list of the store's attributes.
func (c *Client) ListAttributes(ctx context.Context, opts *ListAttributesOptions) (*PaginatedResponse[Attribute], error) {
	if opts == nil {
		opts = &ListAttributesOptions{}
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

	return doRequest[PaginatedResponse[Attribute]](ctx, c, http.MethodGet, "attributes", ro)
}
