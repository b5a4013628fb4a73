package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialistRepository interface {
	FindAll(db *gorm.DB) ([]entity.Specialist, error)
	FindByID(db *gorm.DB, id uint) (*entity.Specialist, error)
}
