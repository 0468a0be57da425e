package services

import (
	"fmt"
	"little_lemon/internal/models"
	"little_lemon/internal/repository"
	"sort"
)

// Order fields a client may name in an update.
const (
	FieldDeliveryCrew = "delivery_crew"
	FieldStatus       = "status"
)

var readOnlyOrderFields = map[string]bool{
	"id":    true,
	"user":  true,
	"total": true,
	"date":  true,
	"items": true,
}

// writableOrderFields is the single source of truth for field-level order
// updates. Roles missing from the table can write nothing.
var writableOrderFields = map[models.Role]map[string]bool{
	models.RoleDeliveryCrew: {FieldStatus: true},
	models.RoleManager:      {FieldDeliveryCrew: true, FieldStatus: true},
}

// WritableOrderFields returns the sorted field names role may update.
func WritableOrderFields(role models.Role) []string {
	fields := make([]string, 0, len(writableOrderFields[role]))
	for f := range writableOrderFields[role] {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// checkOrderFields rejects any field the caller's role cannot write.
func checkOrderFields(role models.Role, fields []string) error {
	allowed := writableOrderFields[role]
	for _, f := range fields {
		switch {
		case allowed[f]:
		case readOnlyOrderFields[f], f == FieldDeliveryCrew, f == FieldStatus:
			return fmt.Errorf("field %q is read-only for %s: %w", f, role, ErrForbidden)
		default:
			return invalid(f, "unknown field")
		}
	}
	return nil
}

// orderScope returns the slice of orders the caller can see.
func orderScope(caller *models.User) repository.OrderScope {
	switch models.RoleOf(caller) {
	case models.RoleManager:
		return repository.OrderScope{}
	case models.RoleDeliveryCrew:
		id := caller.ID
		return repository.OrderScope{DeliveryCrewID: &id}
	default:
		id := caller.ID
		return repository.OrderScope{UserID: &id}
	}
}

func requireManager(caller *models.User) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	if !models.IsManager(caller) {
		return ErrForbidden
	}
	return nil
}

func requireCaller(caller *models.User) error {
	if caller == nil || caller.ID == 0 {
		return ErrUnauthorized
	}
	return nil
}
