package portal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/middleware"
	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/services"
	"github.com/example/storefront/internal/utils"
)

// Handler serves the server-rendered customer portal. It drives the same
// cart engine as the JSON API but reports outcomes as redirects with flash
// messages instead of status codes.
type Handler struct {
	db    *gorm.DB
	cfg   *config.Config
	carts *services.CartService
}

// NewHandler constructs the portal Handler.
func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg, carts: services.NewCartService(db)}
}

// RequireLogin redirects anonymous visitors to the login page.
func (h *Handler) RequireLogin(c *fiber.Ctx) error {
	token := c.Cookies(middleware.TokenCookie)
	if token == "" {
		return c.Redirect("/shop/login")
	}

	userID, err := utils.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		return c.Redirect("/shop/login")
	}

	c.Locals("portalUserID", userID)
	return c.Next()
}

func portalUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("portalUserID").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// LoginPage renders the portal login form.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Sign In",
		"Flash": popFlash(c),
	})
}

// Login authenticates the visitor and stores the session token in a cookie.
func (h *Handler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil ||
		!utils.CheckPassword(user.PasswordHash, password) {
		setFlash(c, "error", "Invalid email or password.")
		return c.Redirect("/shop/login")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		setFlash(c, "error", "Could not sign you in, please try again.")
		return c.Redirect("/shop/login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})

	return c.Redirect("/shop")
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.TokenCookie)
	return c.Redirect("/shop/login")
}

// Catalog renders the product catalog with search and filters.
func (h *Handler) Catalog(c *fiber.Ctx) error {
	query := h.db.Model(&models.Product{}).Where("is_active = ?", true).
		Preload("Category").Preload("Images").Preload("Variants")

	search := c.Query("search")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	selectedCategory := c.Query("category")
	if selectedCategory != "" {
		if id, err := uuid.Parse(selectedCategory); err == nil {
			query = query.Where("category_id = ?", id)
		}
	}

	minPrice := c.Query("min_price")
	if minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("base_price >= ?", v)
		}
	}
	maxPrice := c.Query("max_price")
	if maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("base_price <= ?", v)
		}
	}

	var products []models.Product
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return err
	}

	var categories []models.Category
	if err := h.db.Where("is_active = ?", true).Order("name").Find(&categories).Error; err != nil {
		return err
	}

	return c.Render("catalog", fiber.Map{
		"Title":            "Product Catalog",
		"Flash":            popFlash(c),
		"Products":         products,
		"Categories":       categories,
		"SearchQuery":      search,
		"SelectedCategory": selectedCategory,
		"MinPrice":         minPrice,
		"MaxPrice":         maxPrice,
	})
}

// ProductDetail renders one product with its active variants.
func (h *Handler) ProductDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		setFlash(c, "error", "Product not found.")
		return c.Redirect("/shop")
	}

	var product models.Product
	if err := h.db.Preload("Category").Preload("Images").
		Preload("Variants", "is_active = ?", true).
		First(&product, "id = ? AND is_active = ?", id, true).Error; err != nil {
		setFlash(c, "error", "Product not found.")
		return c.Redirect("/shop")
	}

	for i := range product.Variants {
		product.Variants[i].Product = &product
	}

	return c.Render("product", fiber.Map{
		"Title":   product.Name,
		"Flash":   popFlash(c),
		"Product": product,
	})
}

// CategoryProducts renders the products of one active category.
func (h *Handler) CategoryProducts(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		setFlash(c, "error", "Category not found.")
		return c.Redirect("/shop")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ? AND is_active = ?", id, true).Error; err != nil {
		setFlash(c, "error", "Category not found.")
		return c.Redirect("/shop")
	}

	var products []models.Product
	if err := h.db.Preload("Category").Preload("Images").Preload("Variants").
		Where("category_id = ? AND is_active = ?", id, true).
		Find(&products).Error; err != nil {
		return err
	}

	return c.Render("category", fiber.Map{
		"Title":    category.Name + " Products",
		"Flash":    popFlash(c),
		"Category": category,
		"Products": products,
	})
}

// Cart renders the visitor's shopping cart.
func (h *Handler) Cart(c *fiber.Ctx) error {
	cart, err := h.carts.Get(portalUserID(c))
	if err != nil {
		return err
	}

	return c.Render("cart", fiber.Map{
		"Title":      "Shopping Cart",
		"Flash":      popFlash(c),
		"Cart":       cart,
		"Items":      cart.Items,
		"TotalItems": cart.TotalItems(),
		"TotalPrice": cart.TotalPrice(),
	})
}

// AddToCart handles the add-to-cart form post and redirects back to the
// product page with a flash message.
func (h *Handler) AddToCart(c *fiber.Ctx) error {
	variantID, err := uuid.Parse(c.FormValue("variant_id"))
	if err != nil {
		setFlash(c, "error", "Product variant not found.")
		return c.Redirect("/shop")
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil {
		quantity = 1
	}

	item, err := h.carts.AddItem(portalUserID(c), variantID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVariantNotFound):
			setFlash(c, "error", "Product variant not found.")
			return c.Redirect("/shop")
		case errors.Is(err, services.ErrInsufficientInventory):
			setFlash(c, "error", "Not enough items available in stock.")
			return c.Redirect(productURL(h.db, variantID))
		case errors.Is(err, services.ErrInvalidQuantity):
			setFlash(c, "error", "Quantity must be at least 1.")
			return c.Redirect(productURL(h.db, variantID))
		}
		return err
	}

	name := ""
	if item.Variant != nil && item.Variant.Product != nil {
		name = item.Variant.Product.Name
	}
	setFlash(c, "success", fmt.Sprintf("%s added to cart!", name))
	return c.Redirect(productURL(h.db, variantID))
}

// UpdateCartItem handles the quantity form post on the cart page.
func (h *Handler) UpdateCartItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		setFlash(c, "error", "Cart item not found.")
		return c.Redirect("/shop/cart")
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil {
		setFlash(c, "error", "Invalid quantity.")
		return c.Redirect("/shop/cart")
	}

	item, err := h.carts.UpdateItem(portalUserID(c), itemID, quantity)
	switch {
	case errors.Is(err, services.ErrCartItemNotFound):
		setFlash(c, "error", "Cart item not found.")
	case errors.Is(err, services.ErrInsufficientInventory):
		setFlash(c, "error", "Not enough items available in stock.")
	case err != nil:
		return err
	case item == nil:
		setFlash(c, "success", "Item removed from cart.")
	default:
		setFlash(c, "success", "Cart updated.")
	}

	return c.Redirect("/shop/cart")
}

// RemoveCartItem handles the remove form post on the cart page.
func (h *Handler) RemoveCartItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		setFlash(c, "error", "Cart item not found.")
		return c.Redirect("/shop/cart")
	}

	if err := h.carts.RemoveItem(portalUserID(c), itemID); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			setFlash(c, "error", "Cart item not found.")
			return c.Redirect("/shop/cart")
		}
		return err
	}

	setFlash(c, "success", "Item removed from cart.")
	return c.Redirect("/shop/cart")
}

// productURL resolves the product page for a variant, falling back to the
// catalog root when the variant is gone.
func productURL(db *gorm.DB, variantID uuid.UUID) string {
	var variant models.ProductVariant
	if err := db.First(&variant, "id = ?", variantID).Error; err != nil {
		return "/shop"
	}
	return "/shop/product/" + variant.ProductID.String()
}
