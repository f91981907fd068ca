package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseRange lee los query params desde/hasta (YYYY-MM-DD). desde vacío
// abarca todo el histórico; hasta vacío llega a hoy.
func parseRange(c *fiber.Ctx) (from, to time.Time, ok bool) {
	from = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if s := c.Query("desde"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, false
		}
		from = t
	}
	if s := c.Query("hasta"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, false
		}
		to = t
	}
	return from, to, true
}
