package repository

import (
	"little_lemon/internal/models"

	"gorm.io/gorm"
)

// MenuItemFilter narrows a menu listing. Zero values mean "no constraint".
type MenuItemFilter struct {
	CategoryID uint
	Featured   *bool
	Search     string
	Ordering   string
	Limit      int
	Offset     int
}

var menuItemOrderings = map[string]string{
	"price":     "menu_items.price ASC",
	"-price":    "menu_items.price DESC",
	"category":  "menu_items.category_id ASC",
	"-category": "menu_items.category_id DESC",
	"title":     "menu_items.title ASC",
	"-title":    "menu_items.title DESC",
}

// ValidOrdering reports whether ordering is accepted by List.
func ValidOrdering(ordering string) bool {
	if ordering == "" {
		return true
	}
	_, ok := menuItemOrderings[ordering]
	return ok
}

type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	List(filter MenuItemFilter) ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
	CountOrderItems(id uint) (int64, error)
	DeleteCartLines(id uint) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Omit("Category").Create(item).Error
}

func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Preload("Category").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) List(filter MenuItemFilter) ([]models.MenuItem, error) {
	query := r.db.Model(&models.MenuItem{}).Preload("Category")

	if filter.CategoryID != 0 {
		query = query.Where("menu_items.category_id = ?", filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("menu_items.featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN categories ON categories.id = menu_items.category_id").
			Where("LOWER(menu_items.title) LIKE LOWER(?) OR LOWER(categories.title) LIKE LOWER(?)", pattern, pattern)
	}
	if order, ok := menuItemOrderings[filter.Ordering]; ok {
		query = query.Order(order)
	}
	query = query.Order("menu_items.id")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []models.MenuItem
	err := query.Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Omit("Category").Save(item).Error
}

func (r *menuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

func (r *menuItemRepository) CountOrderItems(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("menu_item_id = ?", id).Count(&count).Error
	return count, err
}

func (r *menuItemRepository) DeleteCartLines(id uint) error {
	return r.db.Where("menu_item_id = ?", id).Delete(&models.CartLine{}).Error
}
