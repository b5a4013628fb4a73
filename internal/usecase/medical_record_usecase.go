package usecase

import (
	"context"

	"github.com/josephsae/healthhub-app/internal/converter"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/internal/service"
	"github.com/josephsae/healthhub-app/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicalRecordNotFound = apperror.NotFound("MEDICAL_RECORD_NOT_FOUND", "Medical record does not exist")

type MedicalRecordUsecase interface {
	List(ctx context.Context, userID uint) (*dto.MedicalRecordListResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.MedicalRecordResponse, error)
	Download(ctx context.Context, userID, id uint) (*dto.MedicalRecordDocument, error)
}

type medicalRecordUsecase struct {
	db                    *gorm.DB
	log                   *logrus.Logger
	recordRepo            repository.MedicalRecordRepository
	appointmentRepo       repository.AppointmentRepository
	resultRepo            repository.ExaminationResultRepository
	medicationRequestRepo repository.MedicationRequestRepository
	renderer              *service.MedicalRecordRenderer
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	appointmentRepo repository.AppointmentRepository,
	resultRepo repository.ExaminationResultRepository,
	medicationRequestRepo repository.MedicationRequestRepository,
	renderer *service.MedicalRecordRenderer,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:                    db,
		log:                   log,
		recordRepo:            recordRepo,
		appointmentRepo:       appointmentRepo,
		resultRepo:            resultRepo,
		medicationRequestRepo: medicationRequestRepo,
		renderer:              renderer,
	}
}

func (u *medicalRecordUsecase) List(ctx context.Context, userID uint) (*dto.MedicalRecordListResponse, error) {
	records, err := u.recordRepo.FindAllByOwner(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		MedicalRecords: converter.MedicalRecordsToResponses(records),
	}, nil
}

func (u *medicalRecordUsecase) Get(ctx context.Context, userID, id uint) (*dto.MedicalRecordResponse, error) {
	record, err := u.findOwned(u.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// Download renders the record together with the caller's full history in
// chronological order.
func (u *medicalRecordUsecase) Download(ctx context.Context, userID, id uint) (*dto.MedicalRecordDocument, error) {
	db := u.db.WithContext(ctx)

	record, err := u.findOwned(db, userID, id)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAllByOwner(db, userID, repository.SortAsc)
	if err != nil {
		u.log.Warnf("Failed to find appointments for medical record: %+v", err)
		return nil, err
	}

	results, err := u.resultRepo.FindAllByOwner(db, userID, repository.SortAsc)
	if err != nil {
		u.log.Warnf("Failed to find examination results for medical record: %+v", err)
		return nil, err
	}

	requests, err := u.medicationRequestRepo.FindAllByOwner(db, userID, repository.SortAsc)
	if err != nil {
		u.log.Warnf("Failed to find medication requests for medical record: %+v", err)
		return nil, err
	}

	rendered, err := u.renderer.Render(&service.MedicalRecordHistory{
		Record:             *record,
		Appointments:       appointments,
		ExaminationResults: results,
		MedicationRequests: requests,
	})
	if err != nil {
		u.log.Warnf("Failed to render medical record: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordDocument{
		FileName:    u.renderer.FileName(record.ID),
		ContentType: u.renderer.ContentType(),
		Body:        rendered,
	}, nil
}

func (u *medicalRecordUsecase) findOwned(db *gorm.DB, userID, id uint) (*entity.MedicalRecord, error) {
	record, err := u.recordRepo.FindByIDForOwner(db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to find medical record by ID: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	return record, nil
}
