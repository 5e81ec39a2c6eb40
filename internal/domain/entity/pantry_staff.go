package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffRole is the duty a pantry staff member performs
type StaffRole string

const (
	StaffRolePreparation StaffRole = "Preparation"
	StaffRoleInventory   StaffRole = "Inventory"
	StaffRoleDelivery    StaffRole = "Delivery"
)

// Valid reports whether the role is one of the known duties.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRolePreparation, StaffRoleInventory, StaffRoleDelivery:
		return true
	}
	return false
}

// PantryStaff represents a member of the pantry crew. Assigned tasks are the
// deliveries pointing back at this record; deleting a staff member leaves
// those deliveries unassigned (FK ON DELETE SET NULL).
type PantryStaff struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffName    string    `gorm:"type:varchar(255);not null" json:"staff_name"`
	ContactInfo  string    `gorm:"type:varchar(100);not null" json:"contact_info"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`
	Role         StaffRole `gorm:"type:varchar(20);not null;index" json:"role"`
	Availability *bool     `gorm:"not null;default:true" json:"availability"`
	ShiftTiming  string    `gorm:"type:varchar(100)" json:"shift_timing,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AssignedTasks []Delivery `gorm:"foreignKey:AssignedStaffID;constraint:OnDelete:SET NULL" json:"assigned_tasks,omitempty"`
}

func (PantryStaff) TableName() string {
	return "pantry_staff"
}
