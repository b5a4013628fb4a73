package converter

import (
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
)

func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:        record.ID,
		UserID:    record.UserID,
		CreatedAt: formatTime(record.CreatedAt),
	}
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
