package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/models"
)

func TestAddItemCreatesLine(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 10, 5)

	item, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, item.Quantity)
	require.Equal(t, variant.ID, item.VariantID)
	require.NotNil(t, item.Variant)
	require.Equal(t, 110.0, item.Variant.FinalPrice())
}

func TestAddItemMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 5)

	_, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	item, err := svc.AddItem(user.ID, variant.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 5)

	_, err := svc.AddItem(user.ID, variant.ID, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(user.ID, variant.ID, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddItemRejectsInsufficientInventory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 3)

	_, err := svc.AddItem(user.ID, variant.ID, 4)
	require.ErrorIs(t, err, ErrInsufficientInventory)
}

func TestAddItemUnknownVariant(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")

	_, err := svc.AddItem(user.ID, uuid.New(), 1)
	require.ErrorIs(t, err, ErrVariantNotFound)
}

func TestAddItemInactiveVariant(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 5)
	require.NoError(t, db.Model(&variant).Update("is_active", false).Error)

	_, err := svc.AddItem(user.ID, variant.ID, 1)
	require.ErrorIs(t, err, ErrVariantNotFound)
}

func TestUpdateItemOverwritesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 10)

	added, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	updated, err := svc.UpdateItem(user.ID, added.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 7, updated.Quantity)
}

func TestUpdateItemZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 10)

	added, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	updated, err := svc.UpdateItem(user.ID, added.ID, 0)
	require.NoError(t, err)
	require.Nil(t, updated)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestUpdateItemInsufficientInventory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 5)

	added, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	_, err = svc.UpdateItem(user.ID, added.ID, 6)
	require.ErrorIs(t, err, ErrInsufficientInventory)
}

func TestUpdateItemForeignCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	variant := seedVariant(t, db, 100, 0, 10)

	added, err := svc.AddItem(alice.ID, variant.ID, 2)
	require.NoError(t, err)

	// Another user's item id behaves exactly like a missing one.
	_, err = svc.UpdateItem(bob.ID, added.ID, 3)
	require.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 10)

	added, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(user.ID, added.ID))
	require.ErrorIs(t, svc.RemoveItem(user.ID, added.ID), ErrCartItemNotFound)
}

func TestGetCreatesEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")

	cart, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Equal(t, 0, cart.TotalItems())
	require.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartTotalsAcrossLines(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 10, 10)

	second := models.ProductVariant{
		ProductID:      variant.ProductID,
		Name:           "Second",
		SKU:            "SKU-SECOND",
		PriceModifier:  25,
		InventoryCount: 10,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&second).Error)

	_, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(user.ID, second.ID, 1)
	require.NoError(t, err)

	cart, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	require.Equal(t, 3, cart.TotalItems())
	// 2 * 110 + 1 * 125
	require.Equal(t, 345.0, cart.TotalPrice())
}
