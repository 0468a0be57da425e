package models

import "github.com/shopspring/decimal"

// OrderItem is an immutable copy of a cart line taken at checkout.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order" gorm:"not null;uniqueIndex:idx_order_menu_item"`
	MenuItemID uint            `json:"menuitem" gorm:"not null;uniqueIndex:idx_order_menu_item"`
	MenuItem   *MenuItem       `json:"-" gorm:"constraint:OnDelete:RESTRICT;"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(6,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}
