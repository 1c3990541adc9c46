package swell

import "github.com/samber/lo"

// SelectedOption is one option choice made by the shopper: the option it
// belongs to and the chosen value.
type SelectedOption struct {
	OptionID string `json:"option_id"`
	ValueID  string `json:"value_id"`
}

// PriceData holds the resolved pricing of an active variant. A field is
// present only when the product defines the corresponding purchase option;
// the resolver never synthesizes a pricing mode the product does not have.
type PriceData struct {
	Standard     *StandardPurchaseOption `json:"standard,omitempty"`
	Subscription *SubscriptionPlan       `json:"subscription,omitempty"`
}

// ActiveVariant is the resolved pricing and identity of a product for the
// shopper's current selection. When a variant matched, its fields are
// embedded and VariantID is set; otherwise only ProductID and the product's
// own price data are populated.
type ActiveVariant struct {
	Variant
	ProductID string    `json:"product_id"`
	VariantID string    `json:"variant_id,omitempty"`
	PriceData PriceData `json:"price_data"`
}

// GetActiveVariant resolves which variant of product matches the selected
// option values and what its effective price data is. planID selects a
// subscription plan; pass the empty string when the shopper has not picked
// one, in which case subscription pricing is never computed.
//
// Matching is lenient by design: the first variant in list order whose
// option value ids are all among the selected values wins, regardless of
// whether the selection covers every option dimension the variant has.
// GetActiveVariant is a pure function; it never fails and never mutates its
// inputs. Missing purchase options, an unknown plan id, or an unmatched
// selection all degrade to absent fields.
func GetActiveVariant(product *Product, selected []SelectedOption, planID string) ActiveVariant {
	active := ActiveVariant{ProductID: product.ID}

	var baseStandard *StandardPurchaseOption
	var baseSubscription *SubscriptionPurchaseOption
	if product.PurchaseOptions != nil {
		baseStandard = product.PurchaseOptions.Standard
		baseSubscription = product.PurchaseOptions.Subscription
	}

	// Fallback pricing from the product itself, used when no variant matches.
	active.PriceData.Standard = baseStandard
	if baseSubscription != nil && planID != "" {
		active.PriceData.Subscription = findPlan(baseSubscription.Plans, planID)
	}

	if product.Variants == nil || len(product.Variants.Results) == 0 {
		return active
	}

	variant := matchVariant(product.Variants.Results, selected)
	if variant == nil {
		return active
	}

	active.Variant = *variant
	active.VariantID = variant.ID
	if baseStandard != nil {
		active.PriceData.Standard = resolveStandard(variant, baseStandard)
	}
	if baseSubscription != nil && planID != "" {
		active.PriceData.Subscription = resolveSubscription(product, variant, baseSubscription, planID)
	}

	return active
}

// matchVariant returns the first variant whose option value ids are all
// contained in the selection. A variant with no option value ids matches
// trivially; malformed data degrades to no match rather than failing.
func matchVariant(variants []Variant, selected []SelectedOption) *Variant {
	selectedIDs := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedIDs[s.ValueID] = true
	}

	for i := range variants {
		v := &variants[i]
		if lo.EveryBy(v.OptionValueIDs, func(id string) bool { return selectedIDs[id] }) {
			return v
		}
	}
	return nil
}

// resolveStandard picks the standard price data for a matched variant:
// the variant's own standard purchase option, else a record synthesized from
// the variant's price fields, else the product's standard purchase option.
func resolveStandard(variant *Variant, base *StandardPurchaseOption) *StandardPurchaseOption {
	if variant.PurchaseOptions != nil && variant.PurchaseOptions.Standard != nil {
		return variant.PurchaseOptions.Standard
	}
	if variant.Price != nil && *variant.Price != 0 {
		return &StandardPurchaseOption{
			Price:     *variant.Price,
			Sale:      variant.Sale,
			SalePrice: variant.SalePrice,
			OrigPrice: variant.OrigPrice,
			Prices:    variant.Prices,
		}
	}
	return base
}

// resolveSubscription looks up the selected plan and folds the matched
// variant's option value price deltas into the plan price. Deltas come from
// the product's option value definitions; only a value whose id is literally
// listed in the variant's option value ids contributes. A plan without a
// defined price keeps its price undefined.
func resolveSubscription(product *Product, variant *Variant, sub *SubscriptionPurchaseOption, planID string) *SubscriptionPlan {
	plan := findPlan(sub.Plans, planID)
	if plan == nil {
		return nil
	}

	resolved := *plan
	if resolved.Price != nil {
		price := *resolved.Price + optionValueDelta(product.Options, variant.OptionValueIDs)
		resolved.Price = &price
	}
	return &resolved
}

func findPlan(plans []SubscriptionPlan, planID string) *SubscriptionPlan {
	plan, ok := lo.Find(plans, func(p SubscriptionPlan) bool { return p.ID == planID })
	if !ok {
		return nil
	}
	return &plan
}

func optionValueDelta(options []ProductOption, valueIDs []string) float64 {
	ids := make(map[string]bool, len(valueIDs))
	for _, id := range valueIDs {
		ids[id] = true
	}

	var delta float64
	for _, opt := range options {
		for _, val := range opt.Values {
			if ids[val.ID] && val.Price != nil {
				delta += *val.Price
			}
		}
	}
	return delta
}
