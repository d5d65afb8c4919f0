package requestid

import "context"

// key is the key used to store request ID in context
type key struct{}

// Header carries the request ID on requests and responses.
const Header = "X-Request-Id"

// With returns a copy of ctx carrying id.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// From extracts the request ID from a standard context
func From(ctx context.Context) string {
	if rid, ok := ctx.Value(key{}).(string); ok {
		return rid
	}
	return ""
}
