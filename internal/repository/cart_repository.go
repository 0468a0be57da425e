package repository

import (
	"little_lemon/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	GetByUserID(userID uint) ([]models.CartLine, error)
	GetLine(userID, menuItemID uint) (*models.CartLine, error)
	Create(line *models.CartLine) error
	Update(line *models.CartLine) error
	DeleteByUserID(userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByUserID(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&lines).Error
	return lines, err
}

func (r *cartRepository) GetLine(userID, menuItemID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) Create(line *models.CartLine) error {
	return r.db.Omit("MenuItem").Create(line).Error
}

func (r *cartRepository) Update(line *models.CartLine) error {
	return r.db.Omit("MenuItem").Save(line).Error
}

func (r *cartRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}
