package entity

type Examination struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Examination) TableName() string {
	return "examinations"
}

type Procedure struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Procedure) TableName() string {
	return "procedures"
}
