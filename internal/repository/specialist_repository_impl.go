package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
)

type specialistRepository struct{}

func NewSpecialistRepository() domainRepo.SpecialistRepository {
	return &specialistRepository{}
}

func (r *specialistRepository) FindAll(db *gorm.DB) ([]entity.Specialist, error) {
	var specialists []entity.Specialist
	if err := db.Order("name ASC").Find(&specialists).Error; err != nil {
		return nil, err
	}
	return specialists, nil
}

func (r *specialistRepository) FindByID(db *gorm.DB, id uint) (*entity.Specialist, error) {
	var specialist entity.Specialist
	err := db.Where("id = ?", id).First(&specialist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialist, nil
}
