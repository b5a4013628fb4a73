package entity

import "time"

// Appointment belongs to exactly one user and one specialist.
type Appointment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	SpecialistID uint      `gorm:"not null;index" json:"specialistId"`
	Date         time.Time `gorm:"not null" json:"date"`
	Reason       string    `gorm:"type:text;not null" json:"reason"`

	// Joined at query time; repositories omit it on writes.
	Specialist Specialist `gorm:"foreignKey:SpecialistID" json:"specialist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
