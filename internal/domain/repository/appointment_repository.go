package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

// AppointmentRepository methods that take a userID never return or touch
// rows owned by anyone else.
type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.Appointment, error)
	FindAllByOwner(db *gorm.DB, userID uint, dir SortDirection) ([]entity.Appointment, error)
	UpdateForOwner(db *gorm.DB, appointment *entity.Appointment) (int64, error)
	DeleteForOwner(db *gorm.DB, id, userID uint) (int64, error)
}
