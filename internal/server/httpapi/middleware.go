package httpapi

import (
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/labstack/echo/v4"
)

// observeMiddleware logs and measures every request. It sees the handler's
// service error before errorHandler turns it into a response. The request ID
// is attached to the request context for every log written downstream.
func (s *Server) observeMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		route := c.Path()
		ctx := logging.WithFields(req.Context(), "request_id", c.Response().Header().Get(echo.HeaderXRequestID))
		c.SetRequest(req.WithContext(ctx))

		start := time.Now()
		err := next(c)
		elapsed := time.Since(start)

		s.metrics.ObserveRequest("http", req.Method+" "+route, err, elapsed)

		kv := []any{
			"method", req.Method,
			"path", route,
			"duration", elapsed,
		}
		if err != nil {
			s.logger.Warn(ctx, "request failed", append(kv, "error", err.Error())...)
		} else {
			s.logger.Debug(ctx, "request handled", append(kv, "status", c.Response().Status)...)
		}

		return err
	}
}
