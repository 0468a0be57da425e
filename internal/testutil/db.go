// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"little_lemon/internal/database"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database with the staff groups
// seeded. A single connection keeps the in-memory database alive for the
// whole test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	groupRepo := repository.NewGroupRepository(db)
	for _, name := range models.StaffGroups {
		_, err := groupRepo.FirstOrCreate(name)
		require.NoError(t, err)
	}
	return db
}

// CreateUser inserts a user in the given groups and returns it reloaded with
// groups attached.
func CreateUser(t *testing.T, db *gorm.DB, username string, groups ...string) *models.User {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, userRepo.Create(user))

	for _, name := range groups {
		group, err := groupRepo.GetByName(name)
		require.NoError(t, err)
		require.NoError(t, groupRepo.AddMember(group, user))
	}

	loaded, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)
	return loaded
}

// Reload fetches the user again so group changes are visible.
func Reload(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()
	loaded, err := repository.NewUserRepository(db).GetByID(user.ID)
	require.NoError(t, err)
	return loaded
}

func CreateCategory(t *testing.T, db *gorm.DB, title, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Title: title, Slug: slug}
	require.NoError(t, repository.NewCategoryRepository(db).Create(category))
	return category
}

func CreateMenuItem(t *testing.T, db *gorm.DB, category *models.Category, title, price string, featured bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		Featured:   featured,
		CategoryID: category.ID,
	}
	require.NoError(t, repository.NewMenuItemRepository(db).Create(item))
	return item
}

// Price parses a decimal literal.
func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
