package dto

// Request DTOs

type CreateMedicationRequestRequest struct {
	MedicationID uint `json:"medicationId" validate:"required,gt=0"`
}

// Response DTOs

type MedicationRequestResponse struct {
	ID           uint                `json:"id"`
	UserID       uint                `json:"userId"`
	MedicationID uint                `json:"medicationId"`
	Status       string              `json:"status"`
	RequestedAt  string              `json:"requestedAt"`
	ApprovedAt   *string             `json:"approvedAt"`
	RejectedAt   *string             `json:"rejectedAt"`
	Comments     *string             `json:"comments"`
	Medication   *MedicationResponse `json:"medication,omitempty"`
}

type MedicationRequestListResponse struct {
	MedicationRequests []MedicationRequestResponse `json:"medicationRequests"`
}

type MedicationRequestEnvelope struct {
	Message           string                     `json:"message,omitempty"`
	MedicationRequest *MedicationRequestResponse `json:"medicationRequest"`
}
