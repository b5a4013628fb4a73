package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
)

type medicationRepository struct{}

func NewMedicationRepository() domainRepo.MedicationRepository {
	return &medicationRepository{}
}

func (r *medicationRepository) FindAll(db *gorm.DB) ([]entity.Medication, error) {
	var medications []entity.Medication
	if err := db.Order("name ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) FindByID(db *gorm.DB, id uint) (*entity.Medication, error) {
	var medication entity.Medication
	err := db.Where("id = ?", id).First(&medication).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medication, nil
}
