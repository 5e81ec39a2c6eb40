package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents an admitted patient receiving meal service.
// Room, bed and floor numbers are stored as strings because wards use
// alphanumeric labels ("101A", "B2").
type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Diseases         StringList `gorm:"type:jsonb" json:"diseases"`
	Allergies        StringList `gorm:"type:jsonb" json:"allergies"`
	RoomNumber       string     `gorm:"type:varchar(20);not null" json:"room_number"`
	BedNumber        string     `gorm:"type:varchar(20);not null" json:"bed_number"`
	FloorNumber      string     `gorm:"type:varchar(20);not null" json:"floor_number"`
	Age              int        `gorm:"not null;check:age >= 0" json:"age"`
	Gender           string     `gorm:"type:varchar(20);not null" json:"gender"`
	ContactInfo      string     `gorm:"type:varchar(100);not null" json:"contact_info"`
	EmergencyContact string     `gorm:"type:varchar(100);not null" json:"emergency_contact"`
	OtherDetails     string     `gorm:"type:text" json:"other_details,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	FoodCharts []FoodChart `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"food_charts,omitempty"`
	Deliveries []Delivery  `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"deliveries,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
