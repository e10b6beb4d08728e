package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/services"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	db    *gorm.DB
	stats *services.StatsService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db, stats: services.NewStatsService(db)}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.stats.Dashboard()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}
