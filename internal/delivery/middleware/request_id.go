// Package middleware holds transport-agnostic echo middleware shared by the
// HTTP entrypoints.
package middleware

import (
	"log/slog"

	deliverycontext "homepros/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process handles the generation or extraction of the Request ID
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Store in echo.Context for response building and echo it back to
		// the client.
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		// Propagate into context.Context so use cases and publishers can
		// attach it to downstream work.
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
