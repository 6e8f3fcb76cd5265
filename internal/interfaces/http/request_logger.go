package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/petshop-pos/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		zl := log.Zerolog()
		event := zl.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			event = zl.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
