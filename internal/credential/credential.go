// Package credential carries the request-scoped bearer token and operator identity
// from the auth middleware down to the backend client.
package credential

import "context"

type ctxKey int

const (
	tokenKey ctxKey = iota
	operatorKey
)

// WithToken returns a context whose backend calls authenticate with token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func Token(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok && t != ""
}

// Operator is the authenticated console user behind a request.
type Operator struct {
	ID   string
	Role string
}

func WithOperator(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, operatorKey, op)
}

func OperatorFrom(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(operatorKey).(Operator)
	return op, ok && op.ID != ""
}
