package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicationRepository interface {
	FindAll(db *gorm.DB) ([]entity.Medication, error)
	FindByID(db *gorm.DB, id uint) (*entity.Medication, error)
}
