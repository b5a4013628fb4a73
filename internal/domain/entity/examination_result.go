package entity

import "time"

// ExaminationResult is owned through its appointment: ExaminationResult ->
// Appointment -> User.
type ExaminationResult struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"not null;index" json:"appointmentId"`
	ExaminationID uint      `gorm:"not null" json:"examinationId"`
	ProcedureID   *uint     `json:"procedureId,omitempty"`
	ResultData    string    `gorm:"type:text;not null" json:"resultData"`
	Date          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"date"`

	Examination Examination `gorm:"foreignKey:ExaminationID" json:"examination"`
	Procedure   *Procedure  `gorm:"foreignKey:ProcedureID" json:"procedure,omitempty"`
}

func (ExaminationResult) TableName() string {
	return "examination_results"
}
