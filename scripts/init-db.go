package main

import (
	"fmt"
	"little_lemon/internal/config"
	"little_lemon/internal/database"
	"little_lemon/internal/migrations"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// init-db migrates the schema, seeds the staff groups and default Manager,
// and loads a starter menu when the catalog is empty.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = migrations.RunMigrations(db, migrations.AdminSeed{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding menu...")
	if err := seedMenu(db); err != nil {
		log.Fatal("Failed to seed menu:", err)
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Printf("Manager login: %s\n", cfg.AdminUsername)
}

type seedItem struct {
	title    string
	price    string
	featured bool
}

var starterMenu = []struct {
	category models.Category
	items    []seedItem
}{
	{
		category: models.Category{Title: "Appetizers", Slug: "appetizers"},
		items: []seedItem{
			{"Bruschetta", "7.99", true},
			{"Greek Salad", "12.99", true},
		},
	},
	{
		category: models.Category{Title: "Main Course", Slug: "main-course"},
		items: []seedItem{
			{"Grilled Fish", "20.00", true},
			{"Lemon Chicken", "18.50", false},
		},
	},
	{
		category: models.Category{Title: "Desserts", Slug: "desserts"},
		items: []seedItem{
			{"Lemon Dessert", "5.00", true},
		},
	},
}

func seedMenu(db *gorm.DB) error {
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)

	existing, err := categoryRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("Menu already seeded")
		return nil
	}

	for _, entry := range starterMenu {
		category := entry.category
		if err := categoryRepo.Create(&category); err != nil {
			return fmt.Errorf("failed to create category %q: %w", category.Title, err)
		}
		for _, it := range entry.items {
			item := &models.MenuItem{
				Title:      it.title,
				Price:      decimal.RequireFromString(it.price),
				Featured:   it.featured,
				CategoryID: category.ID,
			}
			if err := menuRepo.Create(item); err != nil {
				return fmt.Errorf("failed to create menu item %q: %w", it.title, err)
			}
		}
	}
	return nil
}
