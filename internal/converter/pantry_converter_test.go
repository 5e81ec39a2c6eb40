package converter

import (
	"testing"

	"hospital-food-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffTasksToResponsesFlattening(t *testing.T) {
	staffA := entity.PantryStaff{
		ID:        uuid.New(),
		StaffName: "Asha",
		Role:      entity.StaffRolePreparation,
		AssignedTasks: []entity.Delivery{
			{ID: uuid.New(), MealBox: "Morning - Room 101", PreparationStatus: entity.PreparationStatusPending},
			{ID: uuid.New(), MealBox: "Evening - Room 101", PreparationStatus: entity.PreparationStatusInProgress},
		},
	}
	staffB := entity.PantryStaff{
		ID:        uuid.New(),
		StaffName: "Binod",
		Role:      entity.StaffRolePreparation,
		AssignedTasks: []entity.Delivery{
			{ID: uuid.New(), MealBox: "Night - Room 202", PreparationStatus: entity.PreparationStatusCompleted},
		},
	}

	tasks := StaffTasksToResponses([]entity.PantryStaff{staffA, staffB})
	require.Len(t, tasks, 3)

	// Each delivery shows up exactly once and carries its holder
	seen := make(map[uuid.UUID]int)
	for _, task := range tasks {
		seen[task.TaskID]++
	}
	for id, count := range seen {
		assert.Equalf(t, 1, count, "task %s appeared %d times", id, count)
	}

	assert.Equal(t, "Asha", tasks[0].AssignedTo)
	assert.Equal(t, staffA.ID, tasks[0].AssignedToID)
	assert.Equal(t, "Binod", tasks[2].AssignedTo)
	assert.Equal(t, "Completed", tasks[2].PreparationStatus)
}

func TestStaffTasksToResponsesEmpty(t *testing.T) {
	tasks := StaffTasksToResponses(nil)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	// Staff with no assignments contribute no rows
	tasks = StaffTasksToResponses([]entity.PantryStaff{
		{ID: uuid.New(), StaffName: "Idle", Role: entity.StaffRolePreparation},
	})
	assert.Empty(t, tasks)
}

func TestPantryStaffToResponseNil(t *testing.T) {
	assert.Nil(t, PantryStaffToResponse(nil))
}
