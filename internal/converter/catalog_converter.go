package converter

import (
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
)

func SpecialistToResponse(specialist *entity.Specialist) *dto.SpecialistResponse {
	if specialist == nil {
		return nil
	}

	return &dto.SpecialistResponse{
		ID:             specialist.ID,
		Name:           specialist.Name,
		Specialization: specialist.Specialization,
	}
}

func SpecialistsToResponses(specialists []entity.Specialist) []dto.SpecialistResponse {
	responses := make([]dto.SpecialistResponse, len(specialists))
	for i := range specialists {
		responses[i] = *SpecialistToResponse(&specialists[i])
	}
	return responses
}

func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:          medication.ID,
		Name:        medication.Name,
		Description: medication.Description,
	}
}

func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i := range medications {
		responses[i] = *MedicationToResponse(&medications[i])
	}
	return responses
}
