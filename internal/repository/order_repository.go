package repository

import (
	"little_lemon/internal/models"

	"gorm.io/gorm"
)

// OrderScope restricts which orders a query can see. A nil field is not
// applied, so the zero scope sees every order.
type OrderScope struct {
	UserID         *uint
	DeliveryCrewID *uint
	Status         models.OrderStatus
}

func (s OrderScope) apply(db *gorm.DB) *gorm.DB {
	if s.UserID != nil {
		db = db.Where("user_id = ?", *s.UserID)
	}
	if s.DeliveryCrewID != nil {
		db = db.Where("delivery_crew_id = ?", *s.DeliveryCrewID)
	}
	if s.Status != "" {
		db = db.Where("status = ?", s.Status)
	}
	return db
}

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint, scope OrderScope) (*models.Order, error)
	GetAll(scope OrderScope) ([]models.Order, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Omit("Items", "DeliveryCrew").Create(order).Error
}

func (r *orderRepository) GetByID(id uint, scope OrderScope) (*models.Order, error) {
	var order models.Order
	err := scope.apply(r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(scope OrderScope) ([]models.Order, error) {
	var orders []models.Order
	err := scope.apply(r.db).Order("id").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}
