package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/example/storefront/internal/models"
)

// Payload builders shared by the JSON handlers. They flatten associations the
// same way the list/detail endpoints expose them, so the wire shapes stay
// consistent across cart, order and catalog responses.

func imagePayload(img models.ProductImage) fiber.Map {
	return fiber.Map{
		"id":         img.ID,
		"url":        img.URL,
		"alt_text":   img.AltText,
		"is_primary": img.IsPrimary,
	}
}

func variantPayload(v models.ProductVariant) fiber.Map {
	return fiber.Map{
		"id":              v.ID,
		"name":            v.Name,
		"sku":             v.SKU,
		"price_modifier":  v.PriceModifier,
		"final_price":     v.FinalPrice(),
		"inventory_count": v.InventoryCount,
		"is_in_stock":     v.InStock(),
		"is_active":       v.IsActive,
	}
}

// primaryImage picks the first primary-flagged image, or nil. More than one
// image may carry the flag; first match wins.
func primaryImage(p *models.Product) interface{} {
	for _, img := range p.Images {
		if img.IsPrimary {
			return imagePayload(img)
		}
	}
	return nil
}

// priceRange returns the min and max final price across active variants,
// falling back to the base price when the product has none.
func priceRange(p *models.Product) (float64, float64) {
	minPrice, maxPrice := p.BasePrice, p.BasePrice
	first := true
	for i := range p.Variants {
		v := &p.Variants[i]
		if !v.IsActive {
			continue
		}
		if v.Product == nil {
			v.Product = p
		}
		price := v.FinalPrice()
		if first || price < minPrice {
			minPrice = price
		}
		if first || price > maxPrice {
			maxPrice = price
		}
		first = false
	}
	return minPrice, maxPrice
}

func productListPayload(p *models.Product) fiber.Map {
	minPrice, maxPrice := priceRange(p)

	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}

	return fiber.Map{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"category_name": categoryName,
		"min_price":     minPrice,
		"max_price":     maxPrice,
		"primary_image": primaryImage(p),
		"is_active":     p.IsActive,
	}
}

func reviewPayload(r models.ProductReview) fiber.Map {
	userName := ""
	if r.User != nil {
		userName = r.User.Username
	}

	return fiber.Map{
		"id":                   r.ID,
		"user_name":            userName,
		"rating":               r.Rating,
		"title":                r.Title,
		"comment":              r.Comment,
		"is_verified_purchase": r.IsVerifiedPurchase,
		"helpful_votes":        r.HelpfulVotes,
		"created_at":           r.CreatedAt,
	}
}

// averageRating rounds to one decimal and reports 0 for unreviewed products.
func averageRating(reviews []models.ProductReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

func productDetailPayload(p *models.Product) fiber.Map {
	images := make([]fiber.Map, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, imagePayload(img))
	}

	variants := make([]fiber.Map, 0, len(p.Variants))
	for i := range p.Variants {
		if p.Variants[i].Product == nil {
			p.Variants[i].Product = p
		}
		variants = append(variants, variantPayload(p.Variants[i]))
	}

	reviews := make([]fiber.Map, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, reviewPayload(r))
	}

	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}

	return fiber.Map{
		"id":             p.ID,
		"name":           p.Name,
		"description":    p.Description,
		"category_id":    p.CategoryID,
		"category_name":  categoryName,
		"base_price":     p.BasePrice,
		"is_active":      p.IsActive,
		"images":         images,
		"variants":       variants,
		"reviews":        reviews,
		"average_rating": averageRating(p.Reviews),
		"total_reviews":  len(p.Reviews),
		"created_at":     p.CreatedAt,
	}
}

func cartItemPayload(item models.CartItem) fiber.Map {
	payload := fiber.Map{
		"id":          item.ID,
		"variant_id":  item.VariantID,
		"quantity":    item.Quantity,
		"total_price": item.TotalPrice(),
		"added_at":    item.CreatedAt,
	}
	if item.Variant != nil {
		payload["variant_name"] = item.Variant.Name
		payload["variant_sku"] = item.Variant.SKU
		payload["variant_price"] = item.Variant.FinalPrice()
	}
	return payload
}

func cartPayload(cart models.Cart) fiber.Map {
	items := make([]fiber.Map, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemPayload(item))
	}

	return fiber.Map{
		"id":          cart.ID,
		"items":       items,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
		"created_at":  cart.CreatedAt,
		"updated_at":  cart.UpdatedAt,
	}
}

func orderItemPayload(item models.OrderItem) fiber.Map {
	payload := fiber.Map{
		"id":          item.ID,
		"variant_id":  item.VariantID,
		"quantity":    item.Quantity,
		"price":       item.Price,
		"total_price": item.TotalPrice(),
	}
	if item.Variant != nil {
		payload["variant_name"] = item.Variant.Name
		if item.Variant.Product != nil {
			payload["product_name"] = item.Variant.Product.Name
		}
	}
	return payload
}

func orderPayload(order models.Order) fiber.Map {
	items := make([]fiber.Map, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemPayload(item))
	}

	return fiber.Map{
		"id":               order.ID,
		"order_number":     order.OrderNumber,
		"status":           order.Status,
		"total_amount":     order.TotalAmount,
		"shipping_address": order.ShippingAddress,
		"billing_address":  order.BillingAddress,
		"payment_method":   order.PaymentMethod,
		"payment_status":   order.PaymentStatus,
		"items":            items,
		"created_at":       order.CreatedAt,
		"updated_at":       order.UpdatedAt,
	}
}
