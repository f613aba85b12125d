package policy

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/pkg/errs"
)

// Identity is the authenticated caller as asserted by the transport.
type Identity struct {
	UserID kernel.UUID
	Role   user.Role
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the caller identity. ok is false for anonymous calls.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Authorize checks id against the roles required by op.
func Authorize(id Identity, op Operation) error {
	for _, role := range requiredFor[op] {
		if id.Role == role {
			return nil
		}
	}
	return errs.NewAccessDeniedError(string(op), id.Role.String())
}

// AuthorizeContext runs Authorize against the identity stored in ctx. A context
// without identity is denied as anonymous.
func AuthorizeContext(ctx context.Context, op Operation) error {
	id, ok := IdentityFrom(ctx)
	if !ok {
		return errs.NewAccessDeniedError(string(op), "")
	}
	return Authorize(id, op)
}
