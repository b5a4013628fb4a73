package converter

import (
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
)

func AuthorizationToResponse(authorization *entity.Authorization) *dto.AuthorizationResponse {
	if authorization == nil {
		return nil
	}

	return &dto.AuthorizationResponse{
		ID:                  authorization.ID,
		UserID:              authorization.UserID,
		MedicationRequestID: authorization.MedicationRequestID,
		Type:                string(authorization.Type),
		Status:              string(authorization.Status),
		Request:             authorization.Request,
		CreatedAt:           formatTime(authorization.CreatedAt),
		MedicationRequest:   MedicationRequestToResponse(authorization.MedicationRequest),
	}
}

func AuthorizationsToResponses(authorizations []entity.Authorization) []dto.AuthorizationResponse {
	responses := make([]dto.AuthorizationResponse, len(authorizations))
	for i := range authorizations {
		responses[i] = *AuthorizationToResponse(&authorizations[i])
	}
	return responses
}
