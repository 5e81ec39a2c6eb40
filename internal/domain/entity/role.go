package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDPantry   = 2
	RoleIDDelivery = 3
)

// Role name constants
const (
	RoleAdmin    = "admin"
	RolePantry   = "pantry"
	RoleDelivery = "delivery"
)

// RoleIDByName maps a role name from a signup request to its ID.
// Returns 0 for unknown names.
func RoleIDByName(name string) int {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin
	case RolePantry:
		return RoleIDPantry
	case RoleDelivery:
		return RoleIDDelivery
	default:
		return 0
	}
}

// RoleNameByID is the inverse of RoleIDByName.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDPantry:
		return RolePantry
	case RoleIDDelivery:
		return RoleDelivery
	default:
		return ""
	}
}
