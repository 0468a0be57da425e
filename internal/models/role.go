package models

// Role is the single access class a user acts under.
type Role int

const (
	RoleCustomer Role = iota
	RoleDeliveryCrew
	RoleManager
)

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleDeliveryCrew:
		return "delivery_crew"
	default:
		return "customer"
	}
}

// RoleOf classifies u by group membership. Manager wins over Delivery Crew
// when a user is in both. Groups must be preloaded.
func RoleOf(u *User) Role {
	switch {
	case u == nil:
		return RoleCustomer
	case u.InGroup(GroupManager):
		return RoleManager
	case u.InGroup(GroupDeliveryCrew):
		return RoleDeliveryCrew
	default:
		return RoleCustomer
	}
}

func IsManager(u *User) bool {
	return RoleOf(u) == RoleManager
}

func IsDeliveryCrew(u *User) bool {
	return u != nil && u.InGroup(GroupDeliveryCrew)
}
