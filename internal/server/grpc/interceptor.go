package grpc

import (
	"context"
	"path"
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// observeInterceptor logs and measures every unary call and converts the
// handler's service error into a gRPC status. The method name rides on the
// context so handler logs carry it too.
func (s *GRPCServer) observeInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	method := path.Base(info.FullMethod)
	ctx = logging.WithFields(ctx, "method", method)

	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	s.metrics.ObserveRequest("grpc", method, err, elapsed)

	if err == nil {
		s.logger.Info(ctx, "request handled", "duration", elapsed)
		return resp, nil
	}

	st := toStatus(err)
	code := status.Code(st)
	if res := metrics.Result(err); res == metrics.ResultInternal || res == metrics.ResultDependency {
		s.logger.Error(ctx, "request failed", "code", code.String(), "error", err.Error(), "duration", elapsed)
	} else {
		s.logger.Warn(ctx, "request rejected", "code", code.String(), "error", err.Error(), "duration", elapsed)
	}
	return nil, st
}
