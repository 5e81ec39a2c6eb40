package converter

import (
	"hospital-food-service/internal/delivery/dto"
	"hospital-food-service/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []*dto.AuditLogResponse {
	responses := make([]*dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, AuditLogToResponse(&logs[i]))
	}
	return responses
}
