package repository

import (
	"little_lemon/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	CreateBatch(items []models.OrderItem) error
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	DeleteByOrderID(orderID uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) CreateBatch(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Omit("MenuItem").Create(&items).Error
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *orderItemRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}
