package usecase

import (
	"context"

	"github.com/josephsae/healthhub-app/internal/converter"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/pkg/apperror"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = apperror.NotFound("APPOINTMENT_NOT_FOUND", "Appointment does not exist")

type AppointmentUsecase interface {
	List(ctx context.Context, userID uint) (*dto.AppointmentListResponse, error)
	Create(ctx context.Context, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, userID, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	resultRepo      repository.ExaminationResultRepository
	userRepo        repository.UserRepository
	specialistRepo  repository.SpecialistRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	resultRepo repository.ExaminationResultRepository,
	userRepo repository.UserRepository,
	specialistRepo repository.SpecialistRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		resultRepo:      resultRepo,
		userRepo:        userRepo,
		specialistRepo:  specialistRepo,
	}
}

// List returns the caller's appointments, newest first, each with its
// examination results. Results for all appointments come from one query.
func (u *appointmentUsecase) List(ctx context.Context, userID uint) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindAllByOwner(db, userID, repository.SortDesc)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	ids := make([]uint, len(appointments))
	for i := range appointments {
		ids[i] = appointments[i].ID
	}

	results, err := u.resultRepo.FindByAppointmentIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find examination results for appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, results),
	}, nil
}

func (u *appointmentUsecase) Create(ctx context.Context, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	specialist, err := u.findSpecialist(db, req.SpecialistID)
	if err != nil {
		return nil, err
	}

	date, err := validator.ParseISO8601(req.Date)
	if err != nil {
		return nil, apperror.Validation(map[string]string{"date": "must be a valid ISO 8601 date"})
	}

	appointment := &entity.Appointment{
		UserID:       user.ID,
		SpecialistID: specialist.ID,
		Date:         date,
		Reason:       req.Reason,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Specialist = *specialist
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, userID, id uint) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.findOwned(db, userID, id)
	if err != nil {
		return nil, err
	}

	results, err := u.resultRepo.FindByAppointmentIDs(db, []uint{appointment.ID})
	if err != nil {
		u.log.Warnf("Failed to find examination results for appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	response.ExaminationResults = converter.ExaminationResultsToResponses(results)
	return response, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, userID, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.findOwned(db, userID, id)
	if err != nil {
		return nil, err
	}

	if req.SpecialistID != nil {
		specialist, err := u.findSpecialist(db, *req.SpecialistID)
		if err != nil {
			return nil, err
		}
		appointment.SpecialistID = specialist.ID
		appointment.Specialist = *specialist
	}

	if req.Date != nil {
		date, err := validator.ParseISO8601(*req.Date)
		if err != nil {
			return nil, apperror.Validation(map[string]string{"date": "must be a valid ISO 8601 date"})
		}
		appointment.Date = date
	}

	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}

	affected, err := u.appointmentRepo.UpdateForOwner(db, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, userID, id uint) error {
	affected, err := u.appointmentRepo.DeleteForOwner(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (u *appointmentUsecase) findOwned(db *gorm.DB, userID, id uint) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByIDForOwner(db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *appointmentUsecase) findSpecialist(db *gorm.DB, id uint) (*entity.Specialist, error) {
	specialist, err := u.specialistRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find specialist by ID: %+v", err)
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}
	return specialist, nil
}
