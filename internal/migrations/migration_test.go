package migrations

import (
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"little_lemon/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsSeedsManager(t *testing.T) {
	db := testutil.NewDB(t)
	admin := AdminSeed{Username: "admin", Email: "admin@example.com", Password: "admin123"}

	for i := 0; i < 2; i++ {
		require.NoError(t, RunMigrations(db, admin))
	}

	managers, err := repository.NewUserRepository(db).GetByGroup(models.GroupManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "admin", managers[0].Username)

	var groups int64
	require.NoError(t, db.Model(&models.Group{}).Count(&groups).Error)
	assert.Equal(t, int64(len(models.StaffGroups)), groups)
}
