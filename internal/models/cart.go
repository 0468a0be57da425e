package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a pending line in a user's cart. Prices are snapshots taken
// when the line was last written.
type CartLine struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user" gorm:"not null;uniqueIndex:idx_cart_user_menu_item"`
	MenuItemID uint            `json:"menuitem" gorm:"not null;uniqueIndex:idx_cart_user_menu_item"`
	MenuItem   *MenuItem       `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(6,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
}

func (CartLine) TableName() string {
	return "cart_lines"
}

// LinePrice is quantity × unitPrice.
func LinePrice(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
