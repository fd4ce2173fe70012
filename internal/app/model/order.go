package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// ValidOrderStatus reports whether s is one of the known lifecycle states
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is the authoritative record of a checkout submission. UserID is nil
// for anonymous checkouts. The address field embeds the delivery date and
// time the customer picked, concatenated by the checkout flow.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          *uint          `gorm:"index" json:"user_id,omitempty"`
	FullName        string         `gorm:"not null" json:"full_name"`
	Email           string         `gorm:"not null" json:"email"`
	PhoneNumber     string         `gorm:"not null" json:"phone_number"`
	Address         string         `gorm:"type:text;not null" json:"address"`
	TransactionCode string         `gorm:"type:varchar(50);index" json:"transaction_code"`
	TotalAmount     float64        `gorm:"not null" json:"total_amount"`
	Status          OrderStatus    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	User  *User       `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots one cart line at submission time. Product names and
// prices are copied rather than referenced so synthetic bundle products and
// later catalog edits cannot distort past orders.
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OrderID     uint           `gorm:"not null;index" json:"order_id"`
	ProductName string         `gorm:"not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	Price       float64        `gorm:"not null" json:"price"`
	CustomText  string         `gorm:"type:text" json:"custom_text"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
