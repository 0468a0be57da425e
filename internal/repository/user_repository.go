package repository

import (
	"little_lemon/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByGroup(groupName string) ([]models.User, error)
	Update(user *models.User) error
	LockByID(id uint) error
	Taken(username, email string) (usernameTaken, emailTaken bool, err error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByGroup(groupName string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN auth_groups ON auth_groups.id = user_groups.group_id").
		Where("auth_groups.name = ?", groupName).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Omit("Groups").Save(user).Error
}

// LockByID takes a row lock on the user for the rest of the enclosing
// transaction. Cart and checkout writes for one user serialize on it.
func (r *userRepository) LockByID(id uint) error {
	var user models.User
	return r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&user, id).Error
}

// Taken checks the unique columns, soft-deleted users included, since the
// unique indexes still cover them.
func (r *userRepository) Taken(username, email string) (bool, bool, error) {
	var byUsername, byEmail int64
	if err := r.db.Unscoped().Model(&models.User{}).Where("username = ?", username).Count(&byUsername).Error; err != nil {
		return false, false, err
	}
	if err := r.db.Unscoped().Model(&models.User{}).Where("email = ?", email).Count(&byEmail).Error; err != nil {
		return false, false, err
	}
	return byUsername > 0, byEmail > 0, nil
}
