package server

import (
	"context"
	"errors"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// LoggingInterceptor logs every call with its procedure, duration and a
// request id. The id is taken from the X-Request-Id header when the caller
// sent one and is echoed back in the response headers or error metadata.
func LoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, request connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			requestID := request.Header().Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			response, err := next(ctx, request)

			fields := []zap.Field{
				zap.String("procedure", request.Spec().Procedure),
				zap.String("request_id", requestID),
				zap.Duration("duration", time.Since(start)),
			}

			var connectErr *connect.Error

			switch {
			case err == nil:
				response.Header().Set(RequestIDHeader, requestID)
				logger.Info("rpc ok", fields...)
			case errors.As(err, &connectErr):
				connectErr.Meta().Set(RequestIDHeader, requestID)
				logger.Warn("rpc error", append(fields, zap.Stringer("code", connectErr.Code()), zap.String("error", connectErr.Message()))...)
			default:
				logger.Error("rpc error", append(fields, zap.Error(err))...)
			}

			return response, err
		}
	}
}
