package swell

// Page describes the bounds of one page in a paginated response.
type Page struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PaginatedResponse is the standard list envelope returned by the API.
type PaginatedResponse[T any] struct {
	Count   int             `json:"count"`
	Results []T             `json:"results"`
	Page    int             `json:"page"`
	Pages   map[string]Page `json:"pages,omitempty"`
}

// Price is a quantity- or group-tiered price entry.
type Price struct {
	Price        float64 `json:"price"`
	AccountGroup *string `json:"account_group,omitempty"`
	QuantityMin  *int    `json:"quantity_min,omitempty"`
	QuantityMax  *int    `json:"quantity_max,omitempty"`
}

// File holds file metadata for an uploaded asset.
type File struct {
	ID          *string `json:"id,omitempty"`
	URL         string  `json:"url"`
	Filename    *string `json:"filename,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
	Length      *int    `json:"length,omitempty"`
	MD5         *string `json:"md5,omitempty"`
	Width       *int    `json:"width,omitempty"`
	Height      *int    `json:"height,omitempty"`
}

// Image is an image attached to a product or category.
type Image struct {
	ID   string `json:"id"`
	File File   `json:"file"`
}

// BillingSchedule describes how a subscription plan bills.
type BillingSchedule struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
	Limit         *int   `json:"limit"`
	TrialDays     int    `json:"trial_days"`
}

// OrderSchedule describes how a subscription plan generates orders.
type OrderSchedule struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
	Limit         *int   `json:"limit"`
}

// SubscriptionPlan is one recurring pricing plan of a subscription
// purchase option. Price is a pointer: plans without a defined price stay
// undefined through variant resolution instead of collapsing to zero.
type SubscriptionPlan struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Active          *bool            `json:"active,omitempty"`
	Description     *string          `json:"description"`
	Price           *float64         `json:"price,omitempty"`
	Prices          []Price          `json:"prices,omitempty"`
	BillingSchedule *BillingSchedule `json:"billing_schedule,omitempty"`
	OrderSchedule   *OrderSchedule   `json:"order_schedule,omitempty"`
}

// StandardPurchaseOption is the one-time purchase pricing of a product or
// variant. Optional fields are pointers so a synthesized record only carries
// the fields the variant actually defines.
type StandardPurchaseOption struct {
	Active    *bool    `json:"active,omitempty"`
	Price     float64  `json:"price"`
	Sale      *bool    `json:"sale,omitempty"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	OrigPrice *float64 `json:"orig_price,omitempty"`
	Prices    []Price  `json:"prices,omitempty"`
}

// SubscriptionPurchaseOption is the recurring pricing of a product.
type SubscriptionPurchaseOption struct {
	Active *bool              `json:"active,omitempty"`
	Plans  []SubscriptionPlan `json:"plans,omitempty"`
}

// PurchaseOptions groups the pricing modes defined on a product or variant.
type PurchaseOptions struct {
	Standard     *StandardPurchaseOption     `json:"standard,omitempty"`
	Subscription *SubscriptionPurchaseOption `json:"subscription,omitempty"`
}

// ProductOptionValue is one selectable choice within a product option,
// optionally carrying a price delta on top of the base price.
type ProductOptionValue struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          *float64 `json:"price,omitempty"`
	Description    *string  `json:"description,omitempty"`
	ShipmentWeight *float64 `json:"shipment_weight,omitempty"`
}

// ProductOption is a configurable dimension of a product (e.g. Color).
type ProductOption struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Values      []ProductOptionValue `json:"values,omitempty"`
	Variant     bool                 `json:"variant"`
	Active      *bool                `json:"active,omitempty"`
	Required    *bool                `json:"required,omitempty"`
	InputType   *string              `json:"input_type,omitempty"`
	AttributeID *string              `json:"attribute_id,omitempty"`
	Description *string              `json:"description,omitempty"`
	ParentID    *string              `json:"parent_id,omitempty"`
}

// Variant is a specific combination of option values for a product,
// potentially carrying its own price fields or purchase options.
type Variant struct {
	ID              string           `json:"id,omitempty"`
	ParentID        string           `json:"parent_id,omitempty"`
	Name            string           `json:"name,omitempty"`
	Active          *bool            `json:"active,omitempty"`
	OptionValueIDs  []string         `json:"option_value_ids,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	SKU             *string          `json:"sku,omitempty"`
	Attributes      map[string]any   `json:"attributes,omitempty"`
	Price           *float64         `json:"price,omitempty"`
	OrigPrice       *float64         `json:"orig_price,omitempty"`
	Sale            *bool            `json:"sale,omitempty"`
	SalePrice       *float64         `json:"sale_price,omitempty"`
	Prices          []Price          `json:"prices,omitempty"`
	PurchaseOptions *PurchaseOptions `json:"purchase_options,omitempty"`
	StockLevel      *int             `json:"stock_level,omitempty"`
	DateCreated     string           `json:"date_created,omitempty"`
	DateUpdated     string           `json:"date_updated,omitempty"`
}

// Product is a catalog product, optionally with its variant list embedded
// via the "variants" expansion.
type Product struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	Slug            string                       `json:"slug"`
	Active          *bool                        `json:"active,omitempty"`
	Currency        string                       `json:"currency"`
	Description     *string                      `json:"description"`
	Attributes      map[string]any               `json:"attributes,omitempty"`
	Images          []Image                      `json:"images"`
	Options         []ProductOption              `json:"options,omitempty"`
	Price           float64                      `json:"price"`
	OrigPrice       *float64                     `json:"orig_price,omitempty"`
	Sale            *bool                        `json:"sale,omitempty"`
	SalePrice       *float64                     `json:"sale_price,omitempty"`
	Prices          []Price                      `json:"prices,omitempty"`
	PurchaseOptions *PurchaseOptions             `json:"purchase_options,omitempty"`
	SKU             *string                      `json:"sku"`
	StockLevel      *int                         `json:"stock_level,omitempty"`
	StockStatus     *string                      `json:"stock_status"`
	StockTracking   bool                         `json:"stock_tracking"`
	Tags            []string                     `json:"tags,omitempty"`
	MetaTitle       *string                      `json:"meta_title"`
	MetaDescription *string                      `json:"meta_description"`
	Variable        *bool                        `json:"variable,omitempty"`
	Bundle          *bool                        `json:"bundle"`
	Delivery        *string                      `json:"delivery,omitempty"`
	Variants        *PaginatedResponse[Variant]  `json:"variants,omitempty"`
	Categories      *PaginatedResponse[Category] `json:"categories,omitempty"`
	DateCreated     string                       `json:"date_created,omitempty"`
	DateUpdated     string                       `json:"date_updated,omitempty"`
}

// Category is a catalog category.
type Category struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	Slug            string                       `json:"slug"`
	Active          *bool                        `json:"active,omitempty"`
	Description     *string                      `json:"description,omitempty"`
	Images          []Image                      `json:"images,omitempty"`
	ParentID        *string                      `json:"parent_id,omitempty"`
	TopID           *string                      `json:"top_id,omitempty"`
	Sort            *int                         `json:"sort,omitempty"`
	MetaTitle       *string                      `json:"meta_title,omitempty"`
	MetaDescription *string                      `json:"meta_description,omitempty"`
	Parent          *Category                    `json:"parent,omitempty"`
	Top             *Category                    `json:"top,omitempty"`
	Products        *PaginatedResponse[Product]  `json:"products,omitempty"`
	Children        *PaginatedResponse[Category] `json:"children,omitempty"`
	DateCreated     string                       `json:"date_created,omitempty"`
	DateUpdated     string                       `json:"date_updated,omitempty"`
}

// Attribute is a store-defined product attribute.
type Attribute struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Values      []string `json:"values,omitempty"`
	Default     any      `json:"default,omitempty"`
	Visible     *bool    `json:"visible,omitempty"`
	Filterable  *bool    `json:"filterable,omitempty"`
	Searchable  *bool    `json:"searchable,omitempty"`
	Multi       *bool    `json:"multi,omitempty"`
	DateCreated string   `json:"date_created,omitempty"`
	DateUpdated string   `json:"date_updated,omitempty"`
}
