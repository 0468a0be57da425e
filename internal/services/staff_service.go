package services

import (
	"fmt"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
)

// StaffService manages membership of the Manager and Delivery Crew groups.
// Every operation is Manager-only.
type StaffService interface {
	ListMembers(caller *models.User, group string) ([]models.User, error)
	AddToGroup(caller *models.User, group, username string) (*models.User, error)
	RemoveFromGroup(caller *models.User, group, username string) error
	RemoveFromGroupByID(caller *models.User, group string, userID uint) error
}

type staffService struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
}

func NewStaffService(userRepo repository.UserRepository, groupRepo repository.GroupRepository) StaffService {
	return &staffService{userRepo: userRepo, groupRepo: groupRepo}
}

func staffGroup(name string) error {
	for _, g := range models.StaffGroups {
		if g == name {
			return nil
		}
	}
	return fmt.Errorf("group %q %w", name, ErrNotFound)
}

func (s *staffService) ListMembers(caller *models.User, group string) ([]models.User, error) {
	if err := requireManager(caller); err != nil {
		return nil, err
	}
	if err := staffGroup(group); err != nil {
		return nil, err
	}
	return s.userRepo.GetByGroup(group)
}

func (s *staffService) AddToGroup(caller *models.User, group, username string) (*models.User, error) {
	if err := requireManager(caller); err != nil {
		return nil, err
	}
	g, user, err := s.resolve(group, username)
	if err != nil {
		return nil, err
	}
	if err := s.groupRepo.AddMember(g, user); err != nil {
		return nil, fmt.Errorf("failed to add %q to %s: %w", username, group, err)
	}
	return user, nil
}

func (s *staffService) RemoveFromGroup(caller *models.User, group, username string) error {
	if err := requireManager(caller); err != nil {
		return err
	}
	g, user, err := s.resolve(group, username)
	if err != nil {
		return err
	}
	if err := s.groupRepo.RemoveMember(g, user); err != nil {
		return fmt.Errorf("failed to remove %q from %s: %w", username, group, err)
	}
	return nil
}

func (s *staffService) RemoveFromGroupByID(caller *models.User, group string, userID uint) error {
	if err := requireManager(caller); err != nil {
		return err
	}
	if err := staffGroup(group); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return notFound(err, "user")
	}
	return s.RemoveFromGroup(caller, group, user.Username)
}

func (s *staffService) resolve(group, username string) (*models.Group, *models.User, error) {
	if err := staffGroup(group); err != nil {
		return nil, nil, err
	}
	if username == "" {
		return nil, nil, invalid("username", "this field is required")
	}
	g, err := s.groupRepo.GetByName(group)
	if err != nil {
		return nil, nil, notFound(err, "group")
	}
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, notFound(err, "user")
	}
	return g, user, nil
}
