package api

import (
	"context"
	"crypto/subtle"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/nexus-panel/wings/pkg/config"
)

// validCredential checks a presented bearer credential against the node
// token. Both "<token_id>.<token>" and bare "<token>" forms are accepted;
// when a token id is configured and the credential carries one, the ids
// must match. Comparisons are constant-time.
func validCredential(bearer string, panel config.PanelConfig) bool {
	token := bearer
	if dot := strings.IndexByte(bearer, '.'); dot >= 0 {
		id := bearer[:dot]
		token = bearer[dot+1:]
		if panel.TokenID != "" && subtle.ConstantTimeCompare([]byte(id), []byte(panel.TokenID)) == 0 {
			return false
		}
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(panel.Token)) == 1
}

// bearerFromHeader extracts the credential from an Authorization header
// value. The second return is false when the header is missing the
// "Bearer " prefix.
func bearerFromHeader(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

// authorize validates the bearer credential carried in incoming gRPC
// metadata under the "authorization" key.
func authorize(ctx context.Context, panel config.PanelConfig) error {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing metadata")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return status.Error(codes.Unauthenticated, "missing authorization metadata")
	}

	bearer, ok := bearerFromHeader(values[0])
	if !ok || !validCredential(bearer, panel) {
		return status.Error(codes.Unauthenticated, "Authentication failed")
	}
	return nil
}

// UnaryAuthInterceptor creates a gRPC unary interceptor that rejects calls
// without a valid bearer credential. Every method on the service is
// protected; there is no anonymous surface on the gRPC port.
func UnaryAuthInterceptor(panel config.PanelConfig) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := authorize(ctx, panel); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamAuthInterceptor is the streaming counterpart of
// UnaryAuthInterceptor, covering EventStream.
func StreamAuthInterceptor(panel config.PanelConfig) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if err := authorize(ss.Context(), panel); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}
