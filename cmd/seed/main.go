package main

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/database"
	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/utils"
)

// Seeds the database with a sample catalog, users, coupons and orders for
// local development. Safe to re-run against an empty database only.
func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	log.Println("Populating database with sample data...")

	electronics := category(db, "Electronics", "Electronic devices and accessories", nil)
	clothing := category(db, "Clothing", "Fashion and apparel", nil)
	home := category(db, "Home & Garden", "Home improvement and garden supplies", nil)

	phones := category(db, "Phones", "Mobile phones and accessories", electronics)
	laptops := category(db, "Laptops", "Laptop computers and accessories", electronics)
	shirts := category(db, "Shirts", "Men's and women's shirts", clothing)
	shoes := category(db, "Shoes", "Footwear for all occasions", clothing)
	furniture := category(db, "Furniture", "Home furniture and decor", home)

	iphonePro := product(db, phones, "iPhone 15 Pro",
		"Latest iPhone with titanium design, A17 Pro chip, and advanced camera system", 999.00)
	iphone := product(db, phones, "iPhone 15",
		"Latest iPhone with aluminum design, A16 Bionic chip, and dual camera system", 799.00)
	macbookPro := product(db, laptops, "MacBook Pro 16-inch",
		"Professional laptop with M3 Pro chip, 16GB RAM, and 512GB SSD", 2499.00)
	macbookAir := product(db, laptops, "MacBook Air 13-inch",
		"Ultra-thin laptop with M2 chip, 8GB RAM, and 256GB SSD", 1199.00)
	tshirt := product(db, shirts, "Premium Cotton T-Shirt",
		"100% organic cotton t-shirt, comfortable and breathable", 29.99)
	polo := product(db, shirts, "Classic Polo Shirt",
		"Classic polo shirt with collar, perfect for casual and semi-formal occasions", 49.99)
	runningShoes := product(db, shoes, "Running Shoes",
		"High-performance running shoes with advanced cushioning technology", 129.99)
	chair := product(db, furniture, "Ergonomic Office Chair",
		"Comfortable ergonomic office chair with lumbar support and adjustable height", 299.99)

	proVariant := variant(db, iphonePro, "128GB Natural Titanium", "IPH15P-128-NT", 0, 50)
	variant(db, iphonePro, "256GB Natural Titanium", "IPH15P-256-NT", 100.00, 30)
	variant(db, iphonePro, "512GB Natural Titanium", "IPH15P-512-NT", 300.00, 20)
	variant(db, iphonePro, "128GB Blue Titanium", "IPH15P-128-BT", 0, 40)

	variant(db, iphone, "128GB Pink", "IPH15-128-PK", 0, 60)
	variant(db, iphone, "256GB Pink", "IPH15-256-PK", 100.00, 40)
	variant(db, iphone, "128GB Blue", "IPH15-128-BL", 0, 55)

	variant(db, macbookPro, "M3 Pro 18GB/512GB", "MBP16-M3P-18-512", 0, 25)
	variant(db, macbookPro, "M3 Pro 18GB/1TB", "MBP16-M3P-18-1TB", 200.00, 15)
	variant(db, macbookPro, "M3 Max 36GB/1TB", "MBP16-M3M-36-1TB", 500.00, 10)

	variant(db, macbookAir, "M2 8GB/256GB", "MBA13-M2-8-256", 0, 40)
	variant(db, macbookAir, "M2 8GB/512GB", "MBA13-M2-8-512", 200.00, 30)

	variant(db, tshirt, "Small", "TSH-COT-S", 0, 100)
	variant(db, tshirt, "Medium", "TSH-COT-M", 0, 100)
	variant(db, tshirt, "Large", "TSH-COT-L", 0, 100)
	variant(db, tshirt, "X-Large", "TSH-COT-XL", 0, 80)

	variant(db, polo, "Small", "POLO-S", 0, 50)
	variant(db, polo, "Medium", "POLO-M", 0, 50)
	variant(db, polo, "Large", "POLO-L", 0, 50)

	shoeVariant := variant(db, runningShoes, "Size 8", "SHOE-RUN-8", 0, 25)
	variant(db, runningShoes, "Size 9", "SHOE-RUN-9", 0, 30)
	variant(db, runningShoes, "Size 10", "SHOE-RUN-10", 0, 35)
	variant(db, runningShoes, "Size 11", "SHOE-RUN-11", 0, 20)

	variant(db, chair, "Black", "CHAIR-OFF-BLK", 0, 15)
	variant(db, chair, "Gray", "CHAIR-OFF-GRY", 0, 12)
	variant(db, chair, "White", "CHAIR-OFF-WHT", 0, 8)

	testUser := user(db, "testuser", "test@example.com", "testpass123", "Test", "User", false)
	admin := user(db, "admin", "admin@example.com", "admin123", "Admin", "User", true)

	for i, u := range []*models.User{testUser, admin} {
		profile := models.UserProfile{
			UserID:      u.ID,
			PhoneNumber: fmt.Sprintf("+1-555-%04d", i+1),
			Address:     fmt.Sprintf("%d Main Street", i+1),
			City:        "New York",
			State:       "NY",
			ZipCode:     "10001",
			Country:     "USA",
		}
		must(db.Create(&profile).Error)
	}

	now := time.Now()
	coupon(db, "WELCOME10", "10% off for new customers",
		models.DiscountTypePercentage, 10.00, 50.00, 100, now, now.AddDate(0, 0, 30))
	coupon(db, "SAVE20", "$20 off orders over $100",
		models.DiscountTypeFixed, 20.00, 100.00, 50, now, now.AddDate(0, 0, 60))
	coupon(db, "FLASH50", "50% off flash sale",
		models.DiscountTypePercentage, 50.00, 0, 20, now, now.AddDate(0, 0, 7))

	order(db, testUser, "ORD-001", models.OrderStatusDelivered, "credit_card", proVariant, 1)
	order(db, testUser, "ORD-002", models.OrderStatusShipped, "paypal", shoeVariant, 1)

	reviewData := []struct {
		rating  int
		title   string
		comment string
	}{
		{5, "Amazing product!", "Great quality and fast delivery. Highly recommended!"},
		{4, "Very good", "Good value for money. Would buy again."},
		{5, "Perfect!", "Exceeded my expectations. Excellent product."},
		{3, "Average", "It's okay, nothing special but does the job."},
		{5, "Love it!", "Best purchase I've made in a while. Great quality!"},
	}
	reviewed := []*models.Product{iphonePro, iphone, macbookPro, macbookAir, tshirt}
	for i, p := range reviewed {
		review := models.ProductReview{
			ProductID:          p.ID,
			UserID:             testUser.ID,
			Rating:             reviewData[i].rating,
			Title:              reviewData[i].title,
			Comment:            reviewData[i].comment,
			IsVerifiedPurchase: true,
			HelpfulVotes:       i * 2,
		}
		must(db.Create(&review).Error)
	}

	wishlist := models.Wishlist{UserID: testUser.ID}
	must(db.Create(&wishlist).Error)
	for _, p := range []*models.Product{iphonePro, iphone, macbookPro} {
		must(db.Create(&models.WishlistItem{WishlistID: wishlist.ID, ProductID: p.ID}).Error)
	}

	log.Println("Sample data created")
	log.Println("Admin: admin / admin123")
	log.Println("User:  testuser / testpass123")
	log.Println("Coupons: WELCOME10 (10% off, min $50), SAVE20 ($20 off, min $100), FLASH50 (50% off)")
}

func must(err error) {
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func category(db *gorm.DB, name, description string, parent *models.Category) *models.Category {
	c := models.Category{Name: name, Description: description, IsActive: true}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	must(db.Create(&c).Error)
	return &c
}

func product(db *gorm.DB, cat *models.Category, name, description string, basePrice float64) *models.Product {
	p := models.Product{
		Name:        name,
		Description: description,
		CategoryID:  cat.ID,
		BasePrice:   basePrice,
		IsActive:    true,
	}
	must(db.Create(&p).Error)
	return &p
}

func variant(db *gorm.DB, p *models.Product, name, sku string, modifier float64, inventory int) *models.ProductVariant {
	v := models.ProductVariant{
		ProductID:      p.ID,
		Name:           name,
		SKU:            sku,
		PriceModifier:  modifier,
		InventoryCount: inventory,
		IsActive:       true,
	}
	must(db.Create(&v).Error)
	v.Product = p
	return &v
}

func user(db *gorm.DB, username, email, password, first, last string, isAdmin bool) *models.User {
	hash, err := utils.HashPassword(password)
	must(err)
	u := models.User{
		Username:     username,
		Email:        email,
		FirstName:    first,
		LastName:     last,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	must(db.Create(&u).Error)
	return &u
}

func coupon(db *gorm.DB, code, description, discountType string, value, minOrder float64, maxUses int, from, until time.Time) {
	c := models.Coupon{
		Code:           code,
		Description:    description,
		DiscountType:   discountType,
		DiscountValue:  value,
		MinOrderAmount: minOrder,
		MaxUses:        &maxUses,
		IsActive:       true,
		ValidFrom:      from,
		ValidUntil:     until,
	}
	must(db.Create(&c).Error)
}

func order(db *gorm.DB, u *models.User, number string, status models.OrderStatus, paymentMethod string, v *models.ProductVariant, quantity int) {
	o := models.Order{
		UserID:          u.ID,
		OrderNumber:     number,
		Status:          status,
		TotalAmount:     v.FinalPrice() * float64(quantity),
		ShippingAddress: "123 Test Street, New York, NY 10001",
		BillingAddress:  "123 Test Street, New York, NY 10001",
		PaymentMethod:   paymentMethod,
		PaymentStatus:   "paid",
		Items: []models.OrderItem{{
			VariantID: v.ID,
			Quantity:  quantity,
			Price:     v.FinalPrice(),
		}},
	}
	must(db.Create(&o).Error)
}
