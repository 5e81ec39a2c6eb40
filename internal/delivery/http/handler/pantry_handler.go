package handler

import (
	"encoding/json"
	"net/http"

	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/response"
	"hospital-food-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PantryHandler struct {
	pantryUsecase usecase.PantryUsecase
	validator     *validator.CustomValidator
}

func NewPantryHandler(pantryUsecase usecase.PantryUsecase, validator *validator.CustomValidator) *PantryHandler {
	return &PantryHandler{
		pantryUsecase: pantryUsecase,
		validator:     validator,
	}
}

func (h *PantryHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePantryStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.pantryUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create pantry staff")
		return
	}

	response.Success(w, http.StatusCreated, "Pantry staff created successfully", staff)
}

func (h *PantryHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	staff, err := h.pantryUsecase.GetStaff(r.Context(), staffID)
	if err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Pantry staff not found")
			return
		}
		response.InternalServerError(w, "Failed to get pantry staff")
		return
	}

	response.Success(w, http.StatusOK, "Pantry staff retrieved successfully", staff)
}

func (h *PantryHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.pantryUsecase.GetAllStaff(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pantry staff")
		return
	}

	response.Success(w, http.StatusOK, "Pantry staff retrieved successfully", staff)
}

func (h *PantryHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.UpdatePantryStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.pantryUsecase.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Pantry staff not found")
			return
		}
		response.InternalServerError(w, "Failed to update pantry staff")
		return
	}

	response.Success(w, http.StatusOK, "Pantry staff updated successfully", staff)
}

func (h *PantryHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	result, err := h.pantryUsecase.DeleteStaff(r.Context(), staffID)
	if err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Pantry staff not found")
			return
		}
		response.InternalServerError(w, "Failed to delete pantry staff")
		return
	}

	response.Success(w, http.StatusOK, "Pantry staff deleted successfully", result)
}

func (h *PantryHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.pantryUsecase.AssignTask(r.Context(), staffID, req.TaskID)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Pantry staff not found")
		case usecase.ErrTaskNotFound:
			response.NotFound(w, "Task not found")
		default:
			response.InternalServerError(w, "Failed to assign task")
		}
		return
	}

	response.Success(w, http.StatusOK, "Task assigned successfully", staff)
}
