package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name             string   `json:"name" validate:"required"`
	Diseases         []string `json:"diseases" validate:"omitempty"`
	Allergies        []string `json:"allergies" validate:"omitempty"`
	RoomNumber       string   `json:"room_number" validate:"required"`
	BedNumber        string   `json:"bed_number" validate:"required"`
	FloorNumber      string   `json:"floor_number" validate:"required"`
	Age              int      `json:"age" validate:"gte=0"`
	Gender           string   `json:"gender" validate:"required"`
	ContactInfo      string   `json:"contact_info" validate:"required"`
	EmergencyContact string   `json:"emergency_contact" validate:"required"`
	OtherDetails     string   `json:"other_details" validate:"omitempty"`
}

// UpdatePatientRequest replaces the whole record, so it carries the same
// required set as create.
type UpdatePatientRequest struct {
	Name             string   `json:"name" validate:"required"`
	Diseases         []string `json:"diseases" validate:"omitempty"`
	Allergies        []string `json:"allergies" validate:"omitempty"`
	RoomNumber       string   `json:"room_number" validate:"required"`
	BedNumber        string   `json:"bed_number" validate:"required"`
	FloorNumber      string   `json:"floor_number" validate:"required"`
	Age              int      `json:"age" validate:"gte=0"`
	Gender           string   `json:"gender" validate:"required"`
	ContactInfo      string   `json:"contact_info" validate:"required"`
	EmergencyContact string   `json:"emergency_contact" validate:"required"`
	OtherDetails     string   `json:"other_details" validate:"omitempty"`
}

type PatientResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Diseases         []string  `json:"diseases"`
	Allergies        []string  `json:"allergies"`
	RoomNumber       string    `json:"room_number"`
	BedNumber        string    `json:"bed_number"`
	FloorNumber      string    `json:"floor_number"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	ContactInfo      string    `json:"contact_info"`
	EmergencyContact string    `json:"emergency_contact"`
	OtherDetails     string    `json:"other_details,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []*PatientResponse `json:"patients"`
	Total    int                `json:"total"`
}
