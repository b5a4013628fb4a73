package entity

// Specialist is a public catalog entry an appointment is booked with.
type Specialist struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Specialization string `gorm:"type:varchar(255);not null" json:"specialization"`
}

func (Specialist) TableName() string {
	return "specialists"
}
