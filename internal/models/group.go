package models

const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
)

type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null"`
}

// StaffGroups lists the groups seeded on first migration.
var StaffGroups = []string{GroupManager, GroupDeliveryCrew}

func (Group) TableName() string {
	return "auth_groups"
}
