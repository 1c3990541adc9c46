// Command swell-demo exercises the SDK end to end: it fetches a product with
// its variants expanded and resolves the active variant for a sample
// selection. When no SWELL_STORE / SWELL_KEY are configured it serves a
// fixture catalog from an in-process fake backend so the demo works offline.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	swell "github.com/swellstores/swell-sdk"
	"github.com/swellstores/swell-sdk/internal/mockstore"
	"github.com/swellstores/swell-sdk/tracing"
)

func main() {
	if err := run(); err != nil {
		slog.Error("demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Optional; absence of a .env file is not an error.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := tracing.Init(ctx, tracing.DefaultConfig("swell-demo"))
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	client, err := newClient(ctx, logger)
	if err != nil {
		return err
	}

	product, err := client.GetProduct(ctx, "classic-tee", &swell.GetProductOptions{
		Expand: []string{"variants"},
	})
	if err != nil {
		return err
	}
	logger.Info("fetched product",
		slog.String("id", product.ID),
		slog.String("name", product.Name),
		slog.Int("variants", variantCount(product)),
	)

	selected := sampleSelection(product)
	planID := samplePlan(product)
	active := swell.GetActiveVariant(product, selected, planID)

	attrs := []any{
		slog.String("product_id", active.ProductID),
		slog.String("variant_id", active.VariantID),
	}
	if std := active.PriceData.Standard; std != nil {
		attrs = append(attrs, slog.Float64("price", std.Price))
		if std.SalePrice != nil {
			attrs = append(attrs, slog.Float64("sale_price", *std.SalePrice))
		}
	}
	if sub := active.PriceData.Subscription; sub != nil && sub.Price != nil {
		attrs = append(attrs, slog.String("plan", sub.Name), slog.Float64("plan_price", *sub.Price))
	}
	logger.Info("resolved active variant", attrs...)

	categories, err := client.ListCategories(ctx, nil)
	if err != nil {
		return err
	}
	logger.Info("fetched categories", slog.Int("count", categories.Count))

	return nil
}

// newClient builds a client from the environment, falling back to an
// in-process fixture backend when the store is not configured.
func newClient(ctx context.Context, logger *slog.Logger) (*swell.Client, error) {
	opts, err := swell.LoadOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = logger

	if opts.Store != "" && opts.Key != "" {
		return swell.New(opts)
	}

	logger.Info("no store configured, serving fixture catalog in process")

	const key = "demo-key"
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Handler: mockstore.Fixture(key).Handler()}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("fixture backend", slog.String("error", err.Error()))
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	return swell.New(swell.Options{
		Store:  "demo",
		Key:    key,
		URL:    "http://" + ln.Addr().String(),
		Logger: logger,
	})
}

// sampleSelection picks the first value of every variant option, mimicking a
// shopper accepting the defaults.
func sampleSelection(product *swell.Product) []swell.SelectedOption {
	var selected []swell.SelectedOption
	for _, opt := range product.Options {
		if !opt.Variant || len(opt.Values) == 0 {
			continue
		}
		selected = append(selected, swell.SelectedOption{
			OptionID: opt.ID,
			ValueID:  opt.Values[0].ID,
		})
	}
	return selected
}

// samplePlan returns the first subscription plan id, or empty when the
// product has no subscription purchase option.
func samplePlan(product *swell.Product) string {
	po := product.PurchaseOptions
	if po == nil || po.Subscription == nil || len(po.Subscription.Plans) == 0 {
		return ""
	}
	return po.Subscription.Plans[0].ID
}

func variantCount(product *swell.Product) int {
	if product.Variants == nil {
		return 0
	}
	return len(product.Variants.Results)
}
