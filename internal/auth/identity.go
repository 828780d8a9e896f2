package auth

import "context"

type identityKey struct{}

// WithIdentity кладёт в контекст идентификатор пользователя (email),
// выданный провайдером идентификации.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey{}).(string)
	return identity, ok && identity != ""
}
