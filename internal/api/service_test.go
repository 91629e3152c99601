package api

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type echoServer struct {
	UnimplementedStorefrontServer
	lastUpdate *UpdateProfileRequest
}

func (s *echoServer) Register(_ context.Context, in *RegisterRequest) (*RegisterResponse, error) {
	return &RegisterResponse{UserID: "id-for-" + in.Email}, nil
}

func (s *echoServer) UpdateProfile(_ context.Context, in *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	s.lastUpdate = in
	return &UpdateProfileResponse{Rotated: in.Password != nil}, nil
}

func (s *echoServer) AddCategory(context.Context, *AddCategoryRequest) (*AddCategoryResponse, error) {
	return nil, status.Error(codes.FailedPrecondition, "no store")
}

func dial(t *testing.T, srv StorefrontServer, opts ...grpc.ServerOption) StorefrontClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterStorefrontServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewStorefrontClient(conn)
}

func TestClientServer_RoundTrip(t *testing.T) {
	srv := &echoServer{}
	c := dial(t, srv)
	ctx := context.Background()

	reg, err := c.Register(ctx, &RegisterRequest{Email: "jo@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "id-for-jo@x.com", reg.UserID)

	name := "Jo"
	upd, err := c.UpdateProfile(ctx, &UpdateProfileRequest{Email: "jo@x.com", FirstName: &name})
	require.NoError(t, err)
	assert.False(t, upd.Rotated)
	require.NotNil(t, srv.lastUpdate.FirstName)
	assert.Equal(t, "Jo", *srv.lastUpdate.FirstName)
	assert.Nil(t, srv.lastUpdate.Password)
}

func TestClientServer_StatusPropagates(t *testing.T) {
	c := dial(t, &echoServer{})

	_, err := c.AddCategory(context.Background(), &AddCategoryRequest{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = c.ListCategories(context.Background(), &ListCategoriesRequest{StoreID: "s"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServiceDesc_InterceptorSeesFullMethod(t *testing.T) {
	var seen []string
	icpt := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = append(seen, info.FullMethod)
		return handler(ctx, req)
	}

	c := dial(t, &echoServer{}, grpc.ChainUnaryInterceptor(icpt))
	_, err := c.Register(context.Background(), &RegisterRequest{Email: "a@b"})
	require.NoError(t, err)

	assert.Equal(t, []string{MethodRegister}, seen)
}
