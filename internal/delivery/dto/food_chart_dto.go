package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFoodChartRequest struct {
	PatientID    uuid.UUID `json:"patient_id" validate:"required"`
	MorningMeal  string    `json:"morning_meal" validate:"required"`
	EveningMeal  string    `json:"evening_meal" validate:"required"`
	NightMeal    string    `json:"night_meal" validate:"required"`
	Instructions []string  `json:"instructions" validate:"omitempty"`
	Ingredients  []string  `json:"ingredients" validate:"omitempty"`
}

type UpdateFoodChartRequest struct {
	PatientID    uuid.UUID `json:"patient_id" validate:"required"`
	MorningMeal  string    `json:"morning_meal" validate:"required"`
	EveningMeal  string    `json:"evening_meal" validate:"required"`
	NightMeal    string    `json:"night_meal" validate:"required"`
	Instructions []string  `json:"instructions" validate:"omitempty"`
	Ingredients  []string  `json:"ingredients" validate:"omitempty"`
}

type FoodChartResponse struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"patient_name,omitempty"`
	MorningMeal  string    `json:"morning_meal"`
	EveningMeal  string    `json:"evening_meal"`
	NightMeal    string    `json:"night_meal"`
	Instructions []string  `json:"instructions"`
	Ingredients  []string  `json:"ingredients"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FoodChartListResponse struct {
	FoodCharts []*FoodChartResponse `json:"food_charts"`
	Total      int                  `json:"total"`
}
