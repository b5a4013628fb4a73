package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type medicationRequestRepository struct{}

func NewMedicationRequestRepository() domainRepo.MedicationRequestRepository {
	return &medicationRequestRepository{}
}

func (r *medicationRequestRepository) Create(db *gorm.DB, request *entity.MedicationRequest) error {
	return db.Omit(clause.Associations).Create(request).Error
}

func (r *medicationRequestRepository) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.MedicationRequest, error) {
	var request entity.MedicationRequest
	err := db.Preload("Medication").
		Scopes(medicationRequestOwner.OwnedByID(id, userID)).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *medicationRequestRepository) FindAllByOwner(db *gorm.DB, userID uint, dir domainRepo.SortDirection) ([]entity.MedicationRequest, error) {
	var requests []entity.MedicationRequest
	err := db.Preload("Medication").
		Scopes(medicationRequestOwner.Owned(userID)).
		Order(medicationRequestOwner.orderColumn("requested_at") + " " + string(dir)).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
