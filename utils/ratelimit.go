package utils

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit middleware ограничивает частоту запросов по IP клиента.
// Формат rate как у limiter: "20-M" — 20 запросов в минуту.
func RateLimit(rate string) fiber.Handler {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		log.Fatalf("Некорректный формат лимита %q: %v", rate, err)
	}

	instance := limiter.New(memory.NewStore(), parsed)

	return func(c *fiber.Ctx) error {
		lctx, err := instance.Get(c.Context(), c.IP())
		if err != nil {
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))

		if lctx.Reached {
			return c.Status(429).JSON(fiber.Map{
				"msg": "Too many requests",
			})
		}

		return c.Next()
	}
}
