package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.StorefrontClient
	health      healthpb.HealthClient
}

func NewStorefrontClientService(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewStorefrontClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, req *api.RegisterRequest) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserID, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserID, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, email string) (*api.Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetProfile(ctx, &api.GetProfileRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Profile, nil
}

// UpdateProfile reports whether the password was rotated.
func (s *GRPCClient) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Rotated, nil
}

func (s *GRPCClient) CreateStore(ctx context.Context, req *api.CreateStoreRequest) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateStore(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.StoreID, nil
}

func (s *GRPCClient) AddCategory(ctx context.Context, userID, storeID, itemType string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.AddCategory(ctx, &api.AddCategoryRequest{UserID: userID, StoreID: storeID, ItemType: itemType})
	return s.mapError(err)
}

func (s *GRPCClient) ListCategories(ctx context.Context, storeID string) ([]api.Category, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListCategories(ctx, &api.ListCategoriesRequest{StoreID: storeID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

// mapError keeps the server message next to the client sentinel.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	var target error
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		target = ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		target = ErrUnavailable
	case codes.AlreadyExists:
		target = ErrAlreadyExists
	case codes.NotFound:
		target = ErrNotFound
	case codes.InvalidArgument:
		target = ErrInvalid
	case codes.FailedPrecondition:
		target = ErrStoreRequired
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", target, st.Message())
}
