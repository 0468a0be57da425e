package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Title      string          `json:"title" gorm:"size:255;not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null;index"`
	Featured   bool            `json:"featured" gorm:"not null;default:false;index"`
	CategoryID uint            `json:"category_id" gorm:"not null;index"`
	Category   *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT;"`
}
