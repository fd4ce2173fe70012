package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryBudget    ProductCategory = "budget"
	CategoryHampers   ProductCategory = "hampers"
	CategoryDigital   ProductCategory = "digital"
	CategoryWines     ProductCategory = "wines"
	CategoryServices  ProductCategory = "services"
	CategoryPackages  ProductCategory = "packages"
	CategoryKeepsakes ProductCategory = "keepsakes"
)

// Purchasable is the capability a cart line item is built from. Catalog
// products and customer-assembled bundles both satisfy it; cart and order
// code treats the identifier as opaque and never indexes back into the
// catalog with it.
type Purchasable interface {
	PurchasableID() string
	DisplayName() string
	UnitPrice() float64
	PurchasableCategory() ProductCategory
	ImageRef() string
	Describe() string
	CustomNote() string
}

// Product is a catalog entry. Identifiers are stable strings from the
// original fixture ("1", "2", ...). Prices are validated non-negative at the
// catalog boundary, so downstream totals do plain arithmetic.
type Product struct {
	ID          string          `gorm:"primarykey;type:varchar(64)" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"not null" json:"price"`
	Category    ProductCategory `gorm:"type:varchar(50);index" json:"category"`
	ImageURL    string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) PurchasableID() string                { return p.ID }
func (p Product) DisplayName() string                  { return p.Name }
func (p Product) UnitPrice() float64                   { return p.Price }
func (p Product) PurchasableCategory() ProductCategory { return p.Category }
func (p Product) ImageRef() string                     { return p.ImageURL }
func (p Product) Describe() string                     { return p.Description }
func (p Product) CustomNote() string                   { return "" }

// SyntheticProduct is a product-shaped value assembled outside the catalog,
// used for build-your-own bundles. Its identifier is generated and never
// resolves against the products table.
type SyntheticProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	ImageURL    string          `json:"image"`
	Note        string          `json:"custom_text"`
}

func (p SyntheticProduct) PurchasableID() string                { return p.ID }
func (p SyntheticProduct) DisplayName() string                  { return p.Name }
func (p SyntheticProduct) UnitPrice() float64                   { return p.Price }
func (p SyntheticProduct) PurchasableCategory() ProductCategory { return p.Category }
func (p SyntheticProduct) ImageRef() string                     { return p.ImageURL }
func (p SyntheticProduct) Describe() string                     { return p.Description }
func (p SyntheticProduct) CustomNote() string                   { return p.Note }
