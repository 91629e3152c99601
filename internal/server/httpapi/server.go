// Package httpapi exposes the storefront operations as a JSON HTTP API on
// echo, next to the gRPC endpoint. Routes follow the web front end:
// /api/register, /api/profile, /api/create-store and /api/add-item-category.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/metrics"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type accountService interface {
	Register(ctx context.Context, req services.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, email string) (*models.UserView, error)
	UpdateProfile(ctx context.Context, email string, upd services.ProfileUpdate) (bool, error)
}

type storeService interface {
	CreateStore(ctx context.Context, req services.CreateStoreRequest) (string, error)
}

type categoryService interface {
	AddCategory(ctx context.Context, userID, storeID, itemType string) error
	ListCategories(ctx context.Context, storeID string) ([]*models.ItemCategory, error)
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	accounts        accountService
	stores          storeService
	categories      categoryService
	logger          logging.Logger
	metrics         *metrics.Metrics
	echo            *echo.Echo
}

// NewServer builds the echo instance and its routes. gatherer backs the
// /metrics endpoint.
func NewServer(addr string, shutdownTimeout time.Duration, l logging.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer,
	as accountService, ss storeService, cs categoryService) *Server {

	s := &Server{
		address:         addr,
		shutdownTimeout: shutdownTimeout,
		accounts:        as,
		stores:          ss,
		categories:      cs,
		logger:          l.With("module", "http_server"),
		metrics:         m,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.observeMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.GET("/profile", s.getProfile)
	api.PUT("/profile", s.updateProfile)
	api.POST("/create-store", s.createStore)
	api.POST("/add-item-category", s.addCategory)
	api.GET("/item-categories", s.listCategories)

	s.echo = e
	return s
}

// Handler returns the root handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
