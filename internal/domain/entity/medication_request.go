package entity

import "time"

type MedicationRequestStatus string

const (
	MedicationRequestStatusPending  MedicationRequestStatus = "PENDING"
	MedicationRequestStatusApproved MedicationRequestStatus = "APPROVED"
	MedicationRequestStatusRejected MedicationRequestStatus = "REJECTED"
)

// MedicationRequest is a user's request for a catalog medication. ApprovedAt
// and RejectedAt are set by a reviewer flow that this service does not expose.
type MedicationRequest struct {
	ID           uint                    `gorm:"primaryKey" json:"id"`
	UserID       uint                    `gorm:"not null;index" json:"userId"`
	MedicationID uint                    `gorm:"not null" json:"medicationId"`
	Status       MedicationRequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	RequestedAt  time.Time               `gorm:"not null;default:CURRENT_TIMESTAMP" json:"requestedAt"`
	ApprovedAt   *time.Time              `json:"approvedAt"`
	RejectedAt   *time.Time              `json:"rejectedAt"`
	Comments     *string                 `gorm:"type:text" json:"comments"`

	Medication Medication `gorm:"foreignKey:MedicationID" json:"medication"`
}

func (MedicationRequest) TableName() string {
	return "medication_requests"
}
