package services

import (
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"little_lemon/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStaffService(db *gorm.DB) StaffService {
	return NewStaffService(repository.NewUserRepository(db), repository.NewGroupRepository(db))
}

func usernames(users []models.User) []string {
	names := []string{}
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}

func TestStaffRequiresManager(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newStaffService(db)
	alice := testutil.CreateUser(t, db, "alice")
	carl := testutil.CreateUser(t, db, "carl", models.GroupDeliveryCrew)

	for _, caller := range []*models.User{alice, carl} {
		_, err := svc.ListMembers(caller, models.GroupManager)
		assert.ErrorIs(t, err, ErrForbidden)
		_, err = svc.AddToGroup(caller, models.GroupDeliveryCrew, "alice")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.ErrorIs(t, svc.RemoveFromGroup(caller, models.GroupDeliveryCrew, "carl"), ErrForbidden)
	}

	_, err := svc.ListMembers(nil, models.GroupManager)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAddToGroupIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newStaffService(db)
	mary := testutil.CreateUser(t, db, "mary", models.GroupManager)
	testutil.CreateUser(t, db, "bob")

	for i := 0; i < 2; i++ {
		user, err := svc.AddToGroup(mary, models.GroupDeliveryCrew, "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	}

	crew, err := svc.ListMembers(mary, models.GroupDeliveryCrew)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, usernames(crew))

	managers, err := svc.ListMembers(mary, models.GroupManager)
	require.NoError(t, err)
	assert.Equal(t, []string{"mary"}, usernames(managers))
}

func TestAddToGroupUnknownTargets(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newStaffService(db)
	mary := testutil.CreateUser(t, db, "mary", models.GroupManager)

	_, err := svc.AddToGroup(mary, models.GroupDeliveryCrew, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddToGroup(mary, "Cooks", "mary")
	assert.ErrorIs(t, err, ErrNotFound)

	var validation *ValidationError
	_, err = svc.AddToGroup(mary, models.GroupDeliveryCrew, "")
	assert.ErrorAs(t, err, &validation)
}

func TestRemoveFromGroupIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newStaffService(db)
	mary := testutil.CreateUser(t, db, "mary", models.GroupManager)
	carl := testutil.CreateUser(t, db, "carl", models.GroupDeliveryCrew)

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.RemoveFromGroup(mary, models.GroupDeliveryCrew, "carl"))
	}

	crew, err := svc.ListMembers(mary, models.GroupDeliveryCrew)
	require.NoError(t, err)
	assert.Empty(t, crew)
	assert.False(t, models.IsDeliveryCrew(testutil.Reload(t, db, carl)))
}

func TestRemoveFromGroupByID(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newStaffService(db)
	mary := testutil.CreateUser(t, db, "mary", models.GroupManager)
	other := testutil.CreateUser(t, db, "olga", models.GroupManager)

	require.NoError(t, svc.RemoveFromGroupByID(mary, models.GroupManager, other.ID))
	assert.Equal(t, models.RoleCustomer, models.RoleOf(testutil.Reload(t, db, other)))

	assert.ErrorIs(t, svc.RemoveFromGroupByID(mary, models.GroupManager, 9999), ErrNotFound)
	assert.ErrorIs(t, svc.RemoveFromGroupByID(other, models.GroupManager, mary.ID), ErrForbidden)
}
