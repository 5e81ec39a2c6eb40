package converter

import (
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
)

func PantryStaffToResponse(staff *entity.PantryStaff) *dto.PantryStaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.PantryStaffResponse{
		ID:            staff.ID,
		StaffName:     staff.StaffName,
		ContactInfo:   staff.ContactInfo,
		Location:      staff.Location,
		Role:          string(staff.Role),
		Availability:  staff.Availability,
		ShiftTiming:   staff.ShiftTiming,
		AssignedTasks: DeliveriesToResponses(staff.AssignedTasks),
		CreatedAt:     staff.CreatedAt,
		UpdatedAt:     staff.UpdatedAt,
	}
}

func PantryStaffToResponses(staff []entity.PantryStaff) []*dto.PantryStaffResponse {
	responses := make([]*dto.PantryStaffResponse, 0, len(staff))
	for i := range staff {
		responses = append(responses, PantryStaffToResponse(&staff[i]))
	}
	return responses
}

// StaffTasksToResponses flattens preparation staff members and their
// assigned deliveries into the pantry board rows. Each assigned delivery
// appears exactly once because it references exactly one staff member.
func StaffTasksToResponses(staff []entity.PantryStaff) []*dto.TaskResponse {
	tasks := make([]*dto.TaskResponse, 0)
	for i := range staff {
		for j := range staff[i].AssignedTasks {
			task := &staff[i].AssignedTasks[j]
			tasks = append(tasks, &dto.TaskResponse{
				TaskID:            task.ID,
				MealBox:           task.MealBox,
				PreparationStatus: string(task.PreparationStatus),
				AssignedTo:        staff[i].StaffName,
				AssignedToID:      staff[i].ID,
			})
		}
	}
	return tasks
}
