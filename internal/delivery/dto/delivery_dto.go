package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeliveryRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	MealBox       string    `json:"meal_box" validate:"required"`
	DeliveryTime  time.Time `json:"delivery_time" validate:"required"`
	DeliveryNotes string    `json:"delivery_notes" validate:"omitempty"`
}

type UpdateDeliveryRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	MealBox       string    `json:"meal_box" validate:"required"`
	DeliveryTime  time.Time `json:"delivery_time" validate:"required"`
	Delivered     *bool     `json:"delivered" validate:"omitempty"`
	DeliveryNotes string    `json:"delivery_notes" validate:"omitempty"`
}

type UpdateDeliveredRequest struct {
	Delivered *bool `json:"delivered" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
}

type DeliveryResponse struct {
	ID                uuid.UUID  `json:"id"`
	PatientID         uuid.UUID  `json:"patient_id"`
	PatientName       string     `json:"patient_name,omitempty"`
	MealBox           string     `json:"meal_box"`
	DeliveryTime      time.Time  `json:"delivery_time"`
	Delivered         *bool      `json:"delivered"`
	DeliveryNotes     string     `json:"delivery_notes,omitempty"`
	PreparationStatus string     `json:"preparation_status"`
	AssignedStaffID   *uuid.UUID `json:"assigned_staff_id,omitempty"`
	AssignedStaffName string     `json:"assigned_staff_name,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type DeliveryListResponse struct {
	Deliveries []*DeliveryResponse `json:"deliveries"`
	Total      int                 `json:"total"`
}
