package models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is immutable once created except for status and payment_status.
type Order struct {
	BaseModel
	UserID          uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	OrderNumber     string      `gorm:"uniqueIndex" json:"order_number"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	PaymentMethod   string      `gorm:"default:'credit_card'" json:"payment_method"`
	PaymentStatus   string      `gorm:"default:'pending'" json:"payment_status"`
	Items           []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem carries a price snapshot taken at checkout time; later catalog
// price changes do not touch it.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_order_items_order_variant" json:"order_id"`
	VariantID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_order_items_order_variant" json:"variant_id"`
	Variant   *ProductVariant `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
}

// TotalPrice is the snapshotted unit price times quantity.
func (i *OrderItem) TotalPrice() float64 {
	return i.Price * float64(i.Quantity)
}
