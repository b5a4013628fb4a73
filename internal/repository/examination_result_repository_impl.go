package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
)

type examinationResultRepository struct{}

func NewExaminationResultRepository() domainRepo.ExaminationResultRepository {
	return &examinationResultRepository{}
}

func (r *examinationResultRepository) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.ExaminationResult, error) {
	var result entity.ExaminationResult
	err := db.Preload("Examination").
		Preload("Procedure").
		Scopes(examinationResultOwner.OwnedByID(id, userID)).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *examinationResultRepository) FindAllByOwner(db *gorm.DB, userID uint, dir domainRepo.SortDirection) ([]entity.ExaminationResult, error) {
	var results []entity.ExaminationResult
	err := db.Preload("Examination").
		Preload("Procedure").
		Scopes(examinationResultOwner.Owned(userID)).
		Order(examinationResultOwner.orderColumn("date") + " " + string(dir)).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *examinationResultRepository) FindByAppointmentIDs(db *gorm.DB, appointmentIDs []uint) ([]entity.ExaminationResult, error) {
	if len(appointmentIDs) == 0 {
		return []entity.ExaminationResult{}, nil
	}

	var results []entity.ExaminationResult
	err := db.Preload("Examination").
		Preload("Procedure").
		Where("appointment_id IN ?", appointmentIDs).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
