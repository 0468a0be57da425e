package migrations

import (
	"errors"
	"fmt"
	"log"
	"little_lemon/internal/database"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"little_lemon/internal/services"

	"gorm.io/gorm"
)

// AdminSeed describes the Manager account created on an empty database.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// RunMigrations migrates the schema, then seeds the staff groups and a
// default Manager. Safe to run on every start.
func RunMigrations(db *gorm.DB, admin AdminSeed) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	groupRepo := repository.NewGroupRepository(db)
	for _, name := range models.StaffGroups {
		if _, err := groupRepo.FirstOrCreate(name); err != nil {
			return fmt.Errorf("failed to seed group %q: %w", name, err)
		}
	}

	if err := createDefaultManager(db, admin); err != nil {
		log.Printf("Warning: Failed to create default manager: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultManager(db *gorm.DB, admin AdminSeed) error {
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	userService := services.NewUserService(userRepo)

	existing, err := userRepo.GetByUsername(admin.Username)
	if err == nil && existing != nil {
		log.Println("Default manager already exists")
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Creating default manager...")
	user, err := userService.Register(services.RegisterInput{
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
	})
	if err != nil {
		return err
	}

	managers, err := groupRepo.GetByName(models.GroupManager)
	if err != nil {
		return err
	}
	if err := groupRepo.AddMember(managers, user); err != nil {
		return err
	}

	log.Printf("Default manager %q created", admin.Username)
	return nil
}
