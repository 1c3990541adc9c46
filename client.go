// Package swell is a Go client SDK for the Swell storefront API. It builds
// authenticated requests against a store's backend, decodes snake_case wire
// payloads into typed records, and resolves the active priced variant of a
// product from the shopper's selected options and subscription plan.
package swell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/swellstores/swell-sdk/transport"
)

const (
	storeURLFormat  = "https://%s.swell.store"
	defaultVaultURL = "https://vault.schema.io"
)

// Doer performs a single HTTP request. The SDK trusts the Doer's error
// semantics: no retries, no status rewriting. transport.Client is the
// default implementation.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Options configures a Client. Store and Key are required; everything else
// has a usable zero value.
type Options struct {
	// Store is the store slug, used to derive the backend URL.
	Store string `env:"SWELL_STORE" validate:"required"`
	// Key is the public API key sent as basic authorization.
	Key string `env:"SWELL_KEY" validate:"required"`
	// URL overrides the derived https://<store>.swell.store backend URL.
	URL string `env:"SWELL_URL"`
	// VaultURL overrides the card tokenization vault URL.
	VaultURL string `env:"SWELL_VAULT_URL"`
	// UseCamelCase rewrites response keys to camelCase on untyped requests.
	UseCamelCase bool `env:"SWELL_USE_CAMEL_CASE"`

	// Locale, Currency, and SessionToken are client-level defaults for the
	// X-Locale, X-Currency, and X-Session headers. Per-call overrides win;
	// cookies from the CookieReader are the last fallback.
	Locale       string `env:"SWELL_LOCALE"`
	Currency     string `env:"SWELL_CURRENCY"`
	SessionToken string `env:"SWELL_SESSION_TOKEN"`

	// Cookies supplies the swell-session / swell-locale / swell-currency
	// fallbacks. Leave nil when the host has no cookie store.
	Cookies CookieReader

	// Transport performs the HTTP calls. Defaults to transport.New with
	// default settings.
	Transport Doer

	// Logger receives per-request debug logs. Defaults to a discard logger.
	Logger *slog.Logger
}

// Client is an immutable handle to one store's API. It is safe for
// concurrent use.
type Client struct {
	store        string
	key          string
	url          string
	vaultURL     string
	useCamelCase bool
	locale       string
	currency     string
	sessionToken string
	cookies      CookieReader
	transport    Doer
	logger       *slog.Logger
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New creates a Client for the given store. Missing Store or Key is a
// configuration error reported here, before any network activity.
func New(opts Options) (*Client, error) {
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Field() {
				case "Store":
					return nil, ErrMissingStore
				case "Key":
					return nil, ErrMissingKey
				}
			}
		}
		return nil, fmt.Errorf("validate options: %w", err)
	}

	c := &Client{
		store:        opts.Store,
		key:          opts.Key,
		url:          fmt.Sprintf(storeURLFormat, opts.Store),
		vaultURL:     defaultVaultURL,
		useCamelCase: opts.UseCamelCase,
		locale:       opts.Locale,
		currency:     opts.Currency,
		sessionToken: opts.SessionToken,
		cookies:      opts.Cookies,
		transport:    opts.Transport,
		logger:       opts.Logger,
	}

	if opts.URL != "" {
		c.url = strings.TrimSuffix(opts.URL, "/")
	}
	if opts.VaultURL != "" {
		c.vaultURL = strings.TrimSuffix(opts.VaultURL, "/")
	}
	if c.transport == nil {
		c.transport = transport.New(transport.DefaultConfig())
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c, nil
}

// Store returns the store slug the client was created with.
func (c *Client) Store() string {
	return c.store
}

// URL returns the backend base URL requests are sent to.
func (c *Client) URL() string {
	return c.url
}

// VaultURL returns the card tokenization vault URL.
func (c *Client) VaultURL() string {
	return c.vaultURL
}
