package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// How long the "just mutated" pulse stays visible after an add. Purely a UI
// feedback signal, not a correctness one.
const justAddedPulse = 300 * time.Millisecond

// CartItem is one line of a cart: a flattened copy of the purchasable it was
// built from plus a quantity and an optional customization note. Identity is
// the product identifier; a cart holds at most one line per identifier.
type CartItem struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	ImageURL    string          `json:"image"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	CustomText  string          `json:"custom_text,omitempty"`
}

// Cart is the aggregate owning the line items. Items keep insertion order
// and stay unique by product identifier. Totals are derived on every read.
// The visibility flag and the mutation pulse are transient and excluded from
// snapshots.
type Cart struct {
	items     []CartItem
	isOpen    bool
	mutatedAt time.Time
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from a persisted snapshot. A snapshot that
// fails to decode yields an empty cart and the decode error so the caller
// can log it; corrupt state is never fatal.
func RestoreCart(snapshot []byte) (*Cart, error) {
	var items []CartItem
	if err := json.Unmarshal(snapshot, &items); err != nil {
		return NewCart(), err
	}
	return &Cart{items: items}, nil
}

// Snapshot serializes the item collection for persistence
func (c *Cart) Snapshot() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(items)
}

// Add merges a purchasable into the cart: an existing line for the same
// identifier gets its quantity incremented, otherwise a new line with
// quantity 1 is appended. Adding also opens the cart and marks the pulse.
func (c *Cart) Add(p Purchasable) {
	for i := range c.items {
		if c.items[i].ProductID == p.PurchasableID() {
			c.items[i].Quantity++
			c.touch()
			return
		}
	}

	c.items = append(c.items, CartItem{
		ProductID:   p.PurchasableID(),
		Name:        p.DisplayName(),
		Price:       p.UnitPrice(),
		Category:    p.PurchasableCategory(),
		ImageURL:    p.ImageRef(),
		Description: p.Describe(),
		Quantity:    1,
		CustomText:  p.CustomNote(),
	})
	c.touch()
}

func (c *Cart) touch() {
	c.mutatedAt = time.Now()
	c.isOpen = true
}

// Remove deletes the line with the given identifier. Removing an absent
// identifier is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity directly. A quantity of zero or less
// behaves as Remove.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the lines in insertion order
func (c *Cart) Items() []CartItem {
	return c.items
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalItems is the sum of line quantities, recomputed per read
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity, recomputed per read
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Open shows the cart panel
func (c *Cart) Open() { c.isOpen = true }

// Close hides the cart panel
func (c *Cart) Close() { c.isOpen = false }

// IsOpen reports the visibility flag
func (c *Cart) IsOpen() bool { return c.isOpen }

// JustAdded reports whether an add happened within the pulse window. The
// flag falls back to false on its own once the window passes.
func (c *Cart) JustAdded() bool {
	return !c.mutatedAt.IsZero() && time.Since(c.mutatedAt) < justAddedPulse
}

// CartSnapshot is the persisted form of a device's cart: the serialized item
// collection, keyed by device rather than account.
type CartSnapshot struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DeviceID  string         `gorm:"uniqueIndex;not null;type:varchar(64)" json:"device_id"`
	Payload   string         `gorm:"type:text" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
