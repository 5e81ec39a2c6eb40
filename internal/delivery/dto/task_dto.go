package dto

import (
	"github.com/google/uuid"
)

// TaskResponse is the flattened pantry-board row: one assigned delivery
// together with the preparation staff member holding it.
type TaskResponse struct {
	TaskID            uuid.UUID `json:"task_id"`
	MealBox           string    `json:"meal_box"`
	PreparationStatus string    `json:"preparation_status"`
	AssignedTo        string    `json:"assigned_to"`
	AssignedToID      uuid.UUID `json:"assigned_to_id"`
}

type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Total int             `json:"total"`
}
