package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user" gorm:"not null;index"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	DeliveryCrewID *uint           `json:"delivery_crew" gorm:"index"`
	DeliveryCrew   *User           `json:"-" gorm:"constraint:OnDelete:SET NULL;"`
	Status         OrderStatus     `json:"status" gorm:"size:32;not null;default:'pending';index"`
	Date           time.Time       `json:"date" gorm:"not null;index"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	UpdatedAt      time.Time       `json:"-"`
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
)

var orderStatusRank = map[OrderStatus]int{
	OrderPending:        0,
	OrderOutForDelivery: 1,
	OrderDelivered:      2,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanMoveTo reports whether next is the same state or a later one.
func (s OrderStatus) CanMoveTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	return ok && to >= from
}
