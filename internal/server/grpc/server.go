package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/metrics"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
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

type GRPCServer struct {
	api.UnimplementedStorefrontServer
	address    string
	accounts   accountService
	stores     storeService
	categories categoryService
	logger     logging.Logger
	metrics    *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, m *metrics.Metrics, as accountService, ss storeService, cs categoryService) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		metrics:    m,
		accounts:   as,
		stores:     ss,
		categories: cs,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	return s.serve(ctx, listen)
}

// serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.observeInterceptor))

	api.RegisterStorefrontServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
