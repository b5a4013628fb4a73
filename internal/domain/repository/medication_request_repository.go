package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicationRequestRepository interface {
	Create(db *gorm.DB, request *entity.MedicationRequest) error
	FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.MedicationRequest, error)
	FindAllByOwner(db *gorm.DB, userID uint, dir SortDirection) ([]entity.MedicationRequest, error)
}
