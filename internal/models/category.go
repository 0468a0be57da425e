package models

type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"size:255;not null;index"`
	Slug  string `json:"slug" gorm:"unique;not null"`
}
