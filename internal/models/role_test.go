package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func userIn(groups ...string) *User {
	u := &User{Username: "someone"}
	for _, name := range groups {
		u.Groups = append(u.Groups, Group{Name: name})
	}
	return u
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want Role
	}{
		{name: "nil user", user: nil, want: RoleCustomer},
		{name: "no groups", user: userIn(), want: RoleCustomer},
		{name: "manager", user: userIn(GroupManager), want: RoleManager},
		{name: "delivery crew", user: userIn(GroupDeliveryCrew), want: RoleDeliveryCrew},
		{name: "both groups", user: userIn(GroupDeliveryCrew, GroupManager), want: RoleManager},
		{name: "unrelated group", user: userIn("Cooks"), want: RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleOf(tt.user))
		})
	}
}

func TestRolePredicates(t *testing.T) {
	both := userIn(GroupManager, GroupDeliveryCrew)
	assert.True(t, IsManager(both))
	assert.True(t, IsDeliveryCrew(both))
	assert.False(t, IsManager(userIn(GroupDeliveryCrew)))
	assert.False(t, IsDeliveryCrew(nil))
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderPending.CanMoveTo(OrderOutForDelivery))
	assert.True(t, OrderPending.CanMoveTo(OrderDelivered))
	assert.True(t, OrderDelivered.CanMoveTo(OrderDelivered))
	assert.False(t, OrderDelivered.CanMoveTo(OrderPending))
	assert.False(t, OrderPending.CanMoveTo("cancelled"))
	assert.False(t, OrderStatus("bogus").Valid())
}

func TestLinePrice(t *testing.T) {
	got := LinePrice(3, decimal.RequireFromString("2.50"))
	assert.True(t, got.Equal(decimal.RequireFromString("7.50")), got.String())
}
