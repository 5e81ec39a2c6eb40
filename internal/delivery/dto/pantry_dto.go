package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePantryStaffRequest struct {
	StaffName    string `json:"staff_name" validate:"required"`
	ContactInfo  string `json:"contact_info" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=Preparation Inventory Delivery"`
	Availability *bool  `json:"availability" validate:"omitempty"`
	ShiftTiming  string `json:"shift_timing" validate:"omitempty"`
}

type UpdatePantryStaffRequest struct {
	StaffName    string `json:"staff_name" validate:"required"`
	ContactInfo  string `json:"contact_info" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=Preparation Inventory Delivery"`
	Availability *bool  `json:"availability" validate:"omitempty"`
	ShiftTiming  string `json:"shift_timing" validate:"omitempty"`
}

// AssignTaskRequest attaches an existing delivery to a staff member.
type AssignTaskRequest struct {
	TaskID uuid.UUID `json:"task_id" validate:"required"`
}

type PantryStaffResponse struct {
	ID            uuid.UUID           `json:"id"`
	StaffName     string              `json:"staff_name"`
	ContactInfo   string              `json:"contact_info"`
	Location      string              `json:"location"`
	Role          string              `json:"role"`
	Availability  *bool               `json:"availability"`
	ShiftTiming   string              `json:"shift_timing,omitempty"`
	AssignedTasks []*DeliveryResponse `json:"assigned_tasks"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type PantryStaffListResponse struct {
	Staff []*PantryStaffResponse `json:"staff"`
	Total int                    `json:"total"`
}

// DeleteStaffResponse reports how many deliveries lost their assignee when
// the staff member was removed.
type DeleteStaffResponse struct {
	UnassignedTasks int64 `json:"unassigned_tasks"`
}
