package content

import (
	"context"
	"errors"
	"fmt"
)

// Capability is a permission a caller must hold to perform an operation.
type Capability string

// CapabilityAdmin is the only elevated capability. It allows every mutation.
const CapabilityAdmin Capability = "admin"

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the caller's identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller attached by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// Guard checks that the caller in ctx holds a capability. It never writes.
type Guard interface {
	RequireCapability(ctx context.Context, capability Capability) error
}

// RoleResolver looks up the current role of a user.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (string, error)
}

// ErrUnknownUser is returned by a RoleResolver when the user does not exist.
var ErrUnknownUser = errors.New("unknown user")

// RoleGuard grants a capability when the caller's current role has the same name.
// The role is resolved on every check so a demotion takes effect at once.
type RoleGuard struct {
	roles RoleResolver
}

func NewRoleGuard(roles RoleResolver) *RoleGuard {
	return &RoleGuard{roles: roles}
}

func (g *RoleGuard) RequireCapability(ctx context.Context, capability Capability) error {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}
	role, err := g.roles.ResolveRole(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return ErrUnauthorized
		}
		return fmt.Errorf("resolve role: %w", err)
	}
	if role != string(capability) {
		return ErrUnauthorized
	}
	return nil
}
