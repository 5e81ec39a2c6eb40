package converter

import (
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
)

func DeliveryToResponse(delivery *entity.Delivery) *dto.DeliveryResponse {
	if delivery == nil {
		return nil
	}

	resp := &dto.DeliveryResponse{
		ID:                delivery.ID,
		PatientID:         delivery.PatientID,
		PatientName:       delivery.Patient.Name,
		MealBox:           delivery.MealBox,
		DeliveryTime:      delivery.DeliveryTime,
		Delivered:         delivery.Delivered,
		DeliveryNotes:     delivery.DeliveryNotes,
		PreparationStatus: string(delivery.PreparationStatus),
		AssignedStaffID:   delivery.AssignedStaffID,
		CreatedAt:         delivery.CreatedAt,
		UpdatedAt:         delivery.UpdatedAt,
	}
	if delivery.AssignedStaff != nil {
		resp.AssignedStaffName = delivery.AssignedStaff.StaffName
	}
	return resp
}

func DeliveriesToResponses(deliveries []entity.Delivery) []*dto.DeliveryResponse {
	responses := make([]*dto.DeliveryResponse, 0, len(deliveries))
	for i := range deliveries {
		responses = append(responses, DeliveryToResponse(&deliveries[i]))
	}
	return responses
}
