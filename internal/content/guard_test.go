package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f *fakeRoles) ResolveRole(_ context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	role, ok := f.roles[userID]
	if !ok {
		return "", ErrUnknownUser
	}
	return role, nil
}

func TestRoleGuard(t *testing.T) {
	roles := &fakeRoles{roles: map[string]string{"u-admin": "admin", "u-user": "user"}}
	guard := NewRoleGuard(roles)

	asUser := func(id string) context.Context {
		return WithIdentity(context.Background(), Identity{UserID: id})
	}

	t.Run("no identity", func(t *testing.T) {
		assert.ErrorIs(t, guard.RequireCapability(context.Background(), CapabilityAdmin), ErrUnauthorized)
	})
	t.Run("empty user id", func(t *testing.T) {
		assert.ErrorIs(t, guard.RequireCapability(asUser(""), CapabilityAdmin), ErrUnauthorized)
	})
	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, guard.RequireCapability(asUser("ghost"), CapabilityAdmin), ErrUnauthorized)
	})
	t.Run("regular user", func(t *testing.T) {
		assert.ErrorIs(t, guard.RequireCapability(asUser("u-user"), CapabilityAdmin), ErrUnauthorized)
	})
	t.Run("admin", func(t *testing.T) {
		assert.NoError(t, guard.RequireCapability(asUser("u-admin"), CapabilityAdmin))
	})
}

func TestRoleGuard_DemotionTakesEffectImmediately(t *testing.T) {
	roles := &fakeRoles{roles: map[string]string{"u1": "admin"}}
	guard := NewRoleGuard(roles)
	ctx := WithIdentity(context.Background(), Identity{UserID: "u1"})

	assert.NoError(t, guard.RequireCapability(ctx, CapabilityAdmin))

	roles.roles["u1"] = "user"
	assert.ErrorIs(t, guard.RequireCapability(ctx, CapabilityAdmin), ErrUnauthorized)
}

func TestRoleGuard_ResolverFailureIsNotUnauthorized(t *testing.T) {
	boom := errors.New("connection reset")
	guard := NewRoleGuard(&fakeRoles{err: boom})
	ctx := WithIdentity(context.Background(), Identity{UserID: "u1"})

	err := guard.RequireCapability(ctx, CapabilityAdmin)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
