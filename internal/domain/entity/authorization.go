package entity

import "time"

// AuthorizationType is the closed set of authorization variants. Each variant
// declares which secondary references it requires.
type AuthorizationType string

const (
	AuthorizationTypeProcedure         AuthorizationType = "PROCEDURE"
	AuthorizationTypeMedicationRequest AuthorizationType = "MEDICATION_REQUEST"
)

// AuthorizationField names a variant-dependent field of an authorization.
type AuthorizationField string

const AuthorizationFieldMedicationRequestID AuthorizationField = "medicationRequestId"

var authorizationRequiredFields = map[AuthorizationType][]AuthorizationField{
	AuthorizationTypeProcedure:         nil,
	AuthorizationTypeMedicationRequest: {AuthorizationFieldMedicationRequestID},
}

func (t AuthorizationType) Valid() bool {
	_, ok := authorizationRequiredFields[t]
	return ok
}

// RequiredFields lists the secondary references the variant cannot omit.
func (t AuthorizationType) RequiredFields() []AuthorizationField {
	return authorizationRequiredFields[t]
}

// Requires reports whether the variant needs field.
func (t AuthorizationType) Requires(field AuthorizationField) bool {
	for _, f := range authorizationRequiredFields[t] {
		if f == field {
			return true
		}
	}
	return false
}

type AuthorizationStatus string

const (
	AuthorizationStatusPending  AuthorizationStatus = "PENDING"
	AuthorizationStatusApproved AuthorizationStatus = "APPROVED"
	AuthorizationStatusRejected AuthorizationStatus = "REJECTED"
)

// Authorization is created by its owner in PENDING state; nothing in this
// service moves it to another status.
type Authorization struct {
	ID                  uint                `gorm:"primaryKey" json:"id"`
	UserID              uint                `gorm:"not null;index" json:"userId"`
	MedicationRequestID *uint               `json:"medicationRequestId"`
	Type                AuthorizationType   `gorm:"type:varchar(30);not null" json:"type"`
	Status              AuthorizationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Request             string              `gorm:"type:text;not null" json:"request"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"createdAt"`

	MedicationRequest *MedicationRequest `gorm:"foreignKey:MedicationRequestID" json:"medicationRequest,omitempty"`
}

func (Authorization) TableName() string {
	return "authorizations"
}
