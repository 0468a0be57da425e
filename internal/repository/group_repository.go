package repository

import (
	"little_lemon/internal/models"

	"gorm.io/gorm"
)

type GroupRepository interface {
	FirstOrCreate(name string) (*models.Group, error)
	GetByName(name string) (*models.Group, error)
	AddMember(group *models.Group, user *models.User) error
	RemoveMember(group *models.Group, user *models.User) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) FirstOrCreate(name string) (*models.Group, error) {
	group := models.Group{Name: name}
	err := r.db.Where(models.Group{Name: name}).FirstOrCreate(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	err := r.db.Where("name = ?", name).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// AddMember is a no-op when the user is already a member.
func (r *groupRepository) AddMember(group *models.Group, user *models.User) error {
	return r.db.Model(user).Omit("Groups.*").Association("Groups").Append(group)
}

// RemoveMember is a no-op when the user is not a member.
func (r *groupRepository) RemoveMember(group *models.Group, user *models.User) error {
	return r.db.Model(user).Association("Groups").Delete(group)
}
