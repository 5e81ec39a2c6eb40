package converter

import (
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		Name:             patient.Name,
		Diseases:         patient.Diseases,
		Allergies:        patient.Allergies,
		RoomNumber:       patient.RoomNumber,
		BedNumber:        patient.BedNumber,
		FloorNumber:      patient.FloorNumber,
		Age:              patient.Age,
		Gender:           patient.Gender,
		ContactInfo:      patient.ContactInfo,
		EmergencyContact: patient.EmergencyContact,
		OtherDetails:     patient.OtherDetails,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToResponse(&patients[i]))
	}
	return responses
}
