package policy_test

import (
	"context"
	"testing"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/policy"
	"waypoint/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	admin := policy.Identity{UserID: kernel.NewUUID(), Role: user.Admin}
	member := policy.Identity{UserID: kernel.NewUUID(), Role: user.Regular}

	tests := []struct {
		op          policy.Operation
		memberAllow bool
	}{
		{policy.OrderCreate, true},
		{policy.OrderGet, true},
		{policy.OrderListByClient, true},
		{policy.OrderList, false},
		{policy.OrderUpdateStatus, false},
		{policy.OrderDelete, false},
		{policy.PackageCreate, true},
		{policy.PackageUpdate, false},
		{policy.RouteGet, true},
		{policy.RouteListByVehicle, false},
		{policy.VehicleGet, true},
		{policy.VehicleAssignDriver, false},
		{policy.WarehouseGet, true},
		{policy.WarehouseGetByLocation, false},
		{policy.UserUpdateProfile, true},
		{policy.UserRegisterAdmin, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			require.NoError(t, policy.Authorize(admin, tt.op))

			err := policy.Authorize(member, tt.op)
			if tt.memberAllow {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrAccessDenied)
			assert.Contains(t, err.Error(), string(tt.op))
		})
	}
}

func TestEveryOperationAdmitsAdmin(t *testing.T) {
	for _, op := range policy.Operations() {
		assert.Contains(t, policy.RequiredRoles(op), user.Admin, op)
	}
}

func TestAuthorize_UnknownOperation(t *testing.T) {
	assert.Nil(t, policy.RequiredRoles("nope"))
	require.ErrorIs(t, policy.Authorize(policy.Identity{Role: user.Admin}, "nope"), errs.ErrAccessDenied)
}

func TestAuthorizeContext(t *testing.T) {
	err := policy.AuthorizeContext(context.Background(), policy.OrderGet)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Contains(t, err.Error(), "anonymous")

	id := policy.Identity{UserID: kernel.NewUUID(), Role: user.Regular}
	ctx := policy.WithIdentity(context.Background(), id)

	got, ok := policy.IdentityFrom(ctx)
	require.True(t, ok)
	assert.True(t, got.UserID.IsEqual(id.UserID))
	require.NoError(t, policy.AuthorizeContext(ctx, policy.OrderGet))
	require.ErrorIs(t, policy.AuthorizeContext(ctx, policy.OrderDelete), errs.ErrAccessDenied)
}

func TestRequiredRolesReturnsCopy(t *testing.T) {
	roles := policy.RequiredRoles(policy.OrderGet)
	roles[0] = "TAMPERED"
	assert.NotContains(t, policy.RequiredRoles(policy.OrderGet), user.Role("TAMPERED"))
}
