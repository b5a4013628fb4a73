package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

type ExaminationResultRepository interface {
	FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.ExaminationResult, error)
	FindAllByOwner(db *gorm.DB, userID uint, dir SortDirection) ([]entity.ExaminationResult, error)
	// FindByAppointmentIDs expects ids that were already owner-scoped.
	FindByAppointmentIDs(db *gorm.DB, appointmentIDs []uint) ([]entity.ExaminationResult, error)
}
