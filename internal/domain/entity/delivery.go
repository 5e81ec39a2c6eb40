package entity

import (
	"time"

	"github.com/google/uuid"
)

// PreparationStatus tracks meal-box preparation progress
type PreparationStatus string

const (
	PreparationStatusPending    PreparationStatus = "Pending"
	PreparationStatusInProgress PreparationStatus = "In Progress"
	PreparationStatusCompleted  PreparationStatus = "Completed"
)

// Valid reports whether the status is a known value. Any valid status may
// transition to any other; there is no terminal state.
func (s PreparationStatus) Valid() bool {
	switch s {
	case PreparationStatusPending, PreparationStatusInProgress, PreparationStatusCompleted:
		return true
	}
	return false
}

// Delivery represents one meal box headed to a patient. It doubles as the
// pantry "task": AssignedStaffID points at the staff member preparing it.
// The delivered flag and preparation status are tracked independently.
type Delivery struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	MealBox           string            `gorm:"type:varchar(255);not null" json:"meal_box"`
	DeliveryTime      time.Time         `gorm:"not null" json:"delivery_time"`
	Delivered         *bool             `gorm:"not null;default:false" json:"delivered"`
	DeliveryNotes     string            `gorm:"type:text" json:"delivery_notes,omitempty"`
	PreparationStatus PreparationStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"preparation_status"`
	AssignedStaffID   *uuid.UUID        `gorm:"type:uuid;index" json:"assigned_staff_id,omitempty"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	AssignedStaff *PantryStaff `gorm:"foreignKey:AssignedStaffID" json:"assigned_staff,omitempty"`
}

func (Delivery) TableName() string {
	return "deliveries"
}

// IsAssigned reports whether the delivery is attached to a staff member.
func (d *Delivery) IsAssigned() bool {
	return d.AssignedStaffID != nil
}
