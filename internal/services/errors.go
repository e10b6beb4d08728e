package services

import "errors"

var (
	// ErrVariantNotFound means the variant id did not resolve to an active variant.
	ErrVariantNotFound = errors.New("product variant not found")
	// ErrCartItemNotFound covers both missing lines and lines owned by another
	// user; callers cannot tell the two apart.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrInsufficientInventory means the requested quantity exceeds the
	// variant's current stock.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrInvalidQuantity rejects non-positive quantities on add.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrEmptyCart rejects checkout when the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")
)
