package interceptor

import (
	"context"
	"testing"
	"time"

	"shareit-booking/internal/logger"
	"shareit-booking/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	secret    = "0123456789abcdef0123456789abcdef"
	getMethod = "/shareit.booking.v1.BookingService/GetBooking"
)

func capture(seen *metadata.MD, requestID *string) grpc.UnaryHandler {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		*seen, _ = metadata.FromIncomingContext(ctx)
		*requestID = logger.RequestID(ctx)
		return "ok", nil
	}
}

func TestAuthInterceptor_Unary(t *testing.T) {
	tm := security.NewTokenManager(secret, time.Minute)
	info := &grpc.UnaryServerInfo{FullMethod: getMethod}

	t.Run("Token Overrides Client User Id", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(7, "")
		require.NoError(t, err)
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer "+token, "user-id", "99", "x-request-id", "req-9"))

		var seen metadata.MD
		var requestID string
		res, err := NewAuthInterceptor(tm, false).Unary()(ctx, nil, info, capture(&seen, &requestID))
		require.NoError(t, err)
		assert.Equal(t, "ok", res)
		assert.Equal(t, []string{"7"}, seen.Get("user-id"))
		assert.Equal(t, "req-9", requestID)
	})

	t.Run("Missing Token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("user-id", "1"))
		_, err := NewAuthInterceptor(tm, false).Unary()(ctx, nil, info, func(context.Context, interface{}) (interface{}, error) {
			t.Fatal("handler must not run")
			return nil, nil
		})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("Invalid Token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer junk"))
		_, err := NewAuthInterceptor(tm, false).Unary()(ctx, nil, info, nil)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("Trusted User Header", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("user-id", "3"))
		var seen metadata.MD
		var requestID string
		_, err := NewAuthInterceptor(nil, true).Unary()(ctx, nil, info, capture(&seen, &requestID))
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, seen.Get("user-id"))
		assert.NotEmpty(t, requestID)
	})

	t.Run("Public Health Check", func(t *testing.T) {
		health := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
		res, err := NewAuthInterceptor(tm, false).Unary()(context.Background(), nil, health, func(context.Context, interface{}) (interface{}, error) {
			return "healthy", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "healthy", res)
	})
}
