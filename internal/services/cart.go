package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
)

// CartService implements the per-user cart operations. Every item lookup is
// filtered by the owning user, so a foreign item id behaves exactly like a
// missing one.
type CartService struct {
	db *gorm.DB
}

// NewCartService constructs CartService.
func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (s *CartService) GetOrCreate(userID uuid.UUID) (models.Cart, error) {
	var cart models.Cart
	err := s.db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	return cart, err
}

// Get loads the user's cart with all lines and their variants.
func (s *CartService) Get(userID uuid.UUID) (models.Cart, error) {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return cart, err
	}

	err = s.db.Preload("Items.Variant.Product").First(&cart, "id = ?", cart.ID).Error
	return cart, err
}

// AddItem puts quantity units of a variant into the user's cart. If the
// (cart, variant) line already exists the quantities are summed. The
// requested quantity is validated against the variant's total stock; no
// reservation is made.
func (s *CartService) AddItem(userID, variantID uuid.UUID, quantity int) (models.CartItem, error) {
	var item models.CartItem

	if quantity <= 0 {
		return item, ErrInvalidQuantity
	}

	var variant models.ProductVariant
	err := s.db.Preload("Product").
		First(&variant, "id = ? AND is_active = ?", variantID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrVariantNotFound
		}
		return item, err
	}

	if variant.InventoryCount < quantity {
		return item, ErrInsufficientInventory
	}

	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return item, err
	}

	item = models.CartItem{CartID: cart.ID, VariantID: variant.ID, Quantity: quantity}
	if err := s.db.Create(&item).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return item, err
		}
		// A line for this (cart, variant) pair already exists, possibly from a
		// concurrent insert. Resolve by merging quantities into it.
		var existing models.CartItem
		if err := s.db.First(&existing, "cart_id = ? AND variant_id = ?", cart.ID, variant.ID).Error; err != nil {
			return item, err
		}
		existing.Quantity += quantity
		if err := s.db.Save(&existing).Error; err != nil {
			return item, err
		}
		item = existing
	}

	item.Variant = &variant
	return item, nil
}

// UpdateItem overwrites the quantity of a cart line. A quantity of zero or
// less removes the line instead; the returned item is nil in that case.
func (s *CartService) UpdateItem(userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.db.Delete(&models.CartItem{}, "id = ?", item.ID).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	if item.Variant.InventoryCount < quantity {
		return nil, ErrInsufficientInventory
	}

	item.Quantity = quantity
	if err := s.db.Model(&models.CartItem{}).Where("id = ?", item.ID).
		Update("quantity", quantity).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// RemoveItem deletes a cart line owned by the user.
func (s *CartService) RemoveItem(userID, itemID uuid.UUID) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}

	return s.db.Delete(&models.CartItem{}, "id = ?", item.ID).Error
}

func (s *CartService) ownedItem(userID, itemID uuid.UUID) (models.CartItem, error) {
	var item models.CartItem
	err := s.db.Preload("Variant.Product").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrCartItemNotFound
	}
	return item, err
}
