package dto

// Request DTOs

// CreateAuthorizationRequest carries medicationRequestId only for the
// MEDICATION_REQUEST type; which fields a type needs is decided by the
// usecase, not by tags.
type CreateAuthorizationRequest struct {
	Type                string `json:"type" validate:"required,oneof=PROCEDURE MEDICATION_REQUEST"`
	Request             string `json:"request" validate:"required"`
	MedicationRequestID uint   `json:"medicationRequestId"`
}

// Response DTOs

type AuthorizationResponse struct {
	ID                  uint                       `json:"id"`
	UserID              uint                       `json:"userId"`
	MedicationRequestID *uint                      `json:"medicationRequestId"`
	Type                string                     `json:"type"`
	Status              string                     `json:"status"`
	Request             string                     `json:"request"`
	CreatedAt           string                     `json:"createdAt"`
	MedicationRequest   *MedicationRequestResponse `json:"medicationRequest,omitempty"`
}

type AuthorizationListResponse struct {
	Authorizations []AuthorizationResponse `json:"authorizations"`
}

type AuthorizationEnvelope struct {
	Message       string                 `json:"message,omitempty"`
	Authorization *AuthorizationResponse `json:"authorization"`
}
