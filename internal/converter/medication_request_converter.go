package converter

import (
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
)

func MedicationRequestToResponse(request *entity.MedicationRequest) *dto.MedicationRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.MedicationRequestResponse{
		ID:           request.ID,
		UserID:       request.UserID,
		MedicationID: request.MedicationID,
		Status:       string(request.Status),
		RequestedAt:  formatTime(request.RequestedAt),
		ApprovedAt:   formatTimePtr(request.ApprovedAt),
		RejectedAt:   formatTimePtr(request.RejectedAt),
		Comments:     request.Comments,
	}

	if request.Medication.ID != 0 {
		response.Medication = MedicationToResponse(&request.Medication)
	}

	return response
}

func MedicationRequestsToResponses(requests []entity.MedicationRequest) []dto.MedicationRequestResponse {
	responses := make([]dto.MedicationRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *MedicationRequestToResponse(&requests[i])
	}
	return responses
}
