package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Specialist").
		Scopes(appointmentOwner.OwnedByID(id, userID)).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAllByOwner(db *gorm.DB, userID uint, dir domainRepo.SortDirection) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Specialist").
		Scopes(appointmentOwner.Owned(userID)).
		Order(appointmentOwner.orderColumn("date") + " " + string(dir)).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateForOwner writes the mutable columns only when the row still belongs
// to appointment.UserID. Zero affected rows means the row is gone.
func (r *appointmentRepository) UpdateForOwner(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Scopes(appointmentOwner.OwnedByID(appointment.ID, appointment.UserID)).
		Updates(map[string]interface{}{
			"specialist_id": appointment.SpecialistID,
			"date":          appointment.Date,
			"reason":        appointment.Reason,
		})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteForOwner(db *gorm.DB, id, userID uint) (int64, error) {
	result := db.Scopes(appointmentOwner.OwnedByID(id, userID)).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
