package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
)

// CheckoutService converts a cart into an immutable order.
type CheckoutService struct {
	db *gorm.DB
}

// NewCheckoutService constructs CheckoutService.
func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// CheckoutRequest carries the order details supplied by the caller.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address"`
	PaymentMethod   string `json:"payment_method"`
}

// PlaceOrder builds a pending order from the user's current cart. The whole
// sequence runs in one transaction: either the order with all its items
// exists and the cart is empty afterwards, or nothing changed. Line prices
// are snapshotted at this instant; inventory is read, never debited.
func (s *CheckoutService) PlaceOrder(userID uuid.UUID, req CheckoutRequest) (models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items.Variant.Product").
			First(&cart, "user_id = ?", userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrEmptyCart
			}
			return err
		}

		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			UserID:          userID,
			OrderNumber:     generateOrderNumber(),
			Status:          models.OrderStatusPending,
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  req.BillingAddress,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   "pending",
		}
		if order.PaymentMethod == "" {
			order.PaymentMethod = "credit_card"
		}

		var total float64
		for i := range cart.Items {
			line := &cart.Items[i]
			total += line.TotalPrice()
			order.Items = append(order.Items, models.OrderItem{
				VariantID: line.VariantID,
				Quantity:  line.Quantity,
				Price:     line.Variant.FinalPrice(),
			})
		}
		order.TotalAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Empty the cart but keep the cart row for reuse.
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})

	return order, err
}

// generateOrderNumber returns a globally unique order reference. The random
// suffix is wide enough that collisions are not re-checked.
func generateOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "ORD-" + strings.ToUpper(suffix)
}
