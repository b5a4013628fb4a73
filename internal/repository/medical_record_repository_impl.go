package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Scopes(medicalRecordOwner.OwnedByID(id, userID)).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindAllByOwner(db *gorm.DB, userID uint) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Scopes(medicalRecordOwner.Owned(userID)).
		Order(medicalRecordOwner.orderColumn("created_at") + " DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
