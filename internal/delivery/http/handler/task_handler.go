package handler

import (
	"encoding/json"
	"net/http"

	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/response"
	"hospital-food-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	validator   *validator.CustomValidator
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase, validator *validator.CustomValidator) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		validator:   validator,
	}
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskUsecase.GetTasks(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get tasks")
		return
	}

	response.Success(w, http.StatusOK, "Tasks retrieved successfully", tasks)
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	taskID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid task ID", nil)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	delivery, err := h.taskUsecase.UpdateStatus(r.Context(), taskID, entity.PreparationStatus(req.Status))
	if err != nil {
		if err == usecase.ErrTaskNotFound {
			response.NotFound(w, "Task not found")
			return
		}
		response.InternalServerError(w, "Failed to update task status")
		return
	}

	response.Success(w, http.StatusOK, "Task status updated successfully", delivery)
}
