package mockstore

import (
	"github.com/google/uuid"

	swell "github.com/swellstores/swell-sdk"
)

func ptr[T any](v T) *T { return &v }

// Fixture returns a store with a small catalog: a variable t-shirt with
// color and size options, per-variant pricing, and a subscription purchase
// option, plus a category and an attribute.
func Fixture(key string) *Store {
	var (
		colorOptID  = uuid.NewString()
		blueValID   = uuid.NewString()
		greenValID  = uuid.NewString()
		sizeOptID   = uuid.NewString()
		smallValID  = uuid.NewString()
		largeValID  = uuid.NewString()
		monthlyID   = uuid.NewString()
		yearlyID    = uuid.NewString()
		productID   = uuid.NewString()
		categoryID  = uuid.NewString()
		attributeID = uuid.NewString()
	)

	product := swell.Product{
		ID:       productID,
		Name:     "Classic Tee",
		Slug:     "classic-tee",
		Active:   ptr(true),
		Currency: "USD",
		Price:    20,
		Variable: ptr(true),
		Options: []swell.ProductOption{
			{
				ID:      colorOptID,
				Name:    "Color",
				Variant: true,
				Values: []swell.ProductOptionValue{
					{ID: blueValID, Name: "Blue"},
					{ID: greenValID, Name: "Green", Price: ptr(8.0)},
				},
			},
			{
				ID:      sizeOptID,
				Name:    "Size",
				Variant: true,
				Values: []swell.ProductOptionValue{
					{ID: smallValID, Name: "Small"},
					{ID: largeValID, Name: "Large"},
				},
			},
		},
		PurchaseOptions: &swell.PurchaseOptions{
			Standard: &swell.StandardPurchaseOption{
				Price:     20,
				Sale:      ptr(true),
				SalePrice: ptr(15.0),
			},
			Subscription: &swell.SubscriptionPurchaseOption{
				Plans: []swell.SubscriptionPlan{
					{
						ID:    monthlyID,
						Name:  "Monthly",
						Price: ptr(18.0),
						BillingSchedule: &swell.BillingSchedule{
							Interval:      "monthly",
							IntervalCount: 1,
						},
					},
					{
						ID:   yearlyID,
						Name: "Yearly",
						BillingSchedule: &swell.BillingSchedule{
							Interval:      "yearly",
							IntervalCount: 1,
						},
					},
				},
			},
		},
		Variants: &swell.PaginatedResponse[swell.Variant]{
			Count: 3,
			Page:  1,
			Results: []swell.Variant{
				{
					ID:             uuid.NewString(),
					ParentID:       productID,
					Name:           "Blue, Small",
					OptionValueIDs: []string{blueValID, smallValID},
					PurchaseOptions: &swell.PurchaseOptions{
						Standard: &swell.StandardPurchaseOption{
							Price:     22,
							Sale:      ptr(true),
							SalePrice: ptr(17.0),
						},
					},
				},
				{
					ID:             uuid.NewString(),
					ParentID:       productID,
					Name:           "Blue, Large",
					OptionValueIDs: []string{blueValID, largeValID},
					Price:          ptr(24.0),
				},
				{
					ID:             uuid.NewString(),
					ParentID:       productID,
					Name:           "Green, Small",
					OptionValueIDs: []string{greenValID, smallValID},
				},
			},
		},
	}

	s := New(key)
	s.Products = append(s.Products, product)
	s.Categories = append(s.Categories, swell.Category{
		ID:     categoryID,
		Name:   "Apparel",
		Slug:   "apparel",
		Active: ptr(true),
	})
	s.Attributes = append(s.Attributes, swell.Attribute{
		ID:     attributeID,
		Name:   "Material",
		Type:   "select",
		Values: []string{"cotton", "linen"},
	})
	return s
}
