package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.MedicalRecord, error)
	FindAllByOwner(db *gorm.DB, userID uint) ([]entity.MedicalRecord, error)
}
