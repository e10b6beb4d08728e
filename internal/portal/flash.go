package portal

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Level   string // success | error
	Message string
}

func setFlash(c *fiber.Ctx, level, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}

	level, message, found := strings.Cut(decoded, "|")
	if !found {
		return &Flash{Level: "success", Message: decoded}
	}
	return &Flash{Level: level, Message: message}
}
