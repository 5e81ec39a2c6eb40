package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodChart represents the daily diet chart for one patient
type FoodChart struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	MorningMeal  string     `gorm:"type:text;not null" json:"morning_meal"`
	EveningMeal  string     `gorm:"type:text;not null" json:"evening_meal"`
	NightMeal    string     `gorm:"type:text;not null" json:"night_meal"`
	Instructions StringList `gorm:"type:jsonb" json:"instructions"`
	Ingredients  StringList `gorm:"type:jsonb" json:"ingredients"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (FoodChart) TableName() string {
	return "food_charts"
}
