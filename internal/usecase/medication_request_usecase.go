package usecase

import (
	"context"
	"time"

	"github.com/josephsae/healthhub-app/internal/converter"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicationRequestNotFound = apperror.NotFound("MEDICATION_REQUEST_NOT_FOUND", "Medication request does not exist")

type MedicationRequestUsecase interface {
	List(ctx context.Context, userID uint) (*dto.MedicationRequestListResponse, error)
	Create(ctx context.Context, userID uint, req *dto.CreateMedicationRequestRequest) (*dto.MedicationRequestResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.MedicationRequestResponse, error)
}

type medicationRequestUsecase struct {
	db                    *gorm.DB
	log                   *logrus.Logger
	medicationRequestRepo repository.MedicationRequestRepository
	medicationRepo        repository.MedicationRepository
	userRepo              repository.UserRepository
}

func NewMedicationRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicationRequestRepo repository.MedicationRequestRepository,
	medicationRepo repository.MedicationRepository,
	userRepo repository.UserRepository,
) MedicationRequestUsecase {
	return &medicationRequestUsecase{
		db:                    db,
		log:                   log,
		medicationRequestRepo: medicationRequestRepo,
		medicationRepo:        medicationRepo,
		userRepo:              userRepo,
	}
}

func (u *medicationRequestUsecase) List(ctx context.Context, userID uint) (*dto.MedicationRequestListResponse, error) {
	requests, err := u.medicationRequestRepo.FindAllByOwner(u.db.WithContext(ctx), userID, repository.SortDesc)
	if err != nil {
		u.log.Warnf("Failed to find medication requests: %+v", err)
		return nil, err
	}

	return &dto.MedicationRequestListResponse{
		MedicationRequests: converter.MedicationRequestsToResponses(requests),
	}, nil
}

func (u *medicationRequestUsecase) Create(ctx context.Context, userID uint, req *dto.CreateMedicationRequestRequest) (*dto.MedicationRequestResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	medication, err := u.medicationRepo.FindByID(db, req.MedicationID)
	if err != nil {
		u.log.Warnf("Failed to find medication by ID: %+v", err)
		return nil, err
	}
	if medication == nil {
		return nil, ErrMedicationNotFound
	}

	request := &entity.MedicationRequest{
		UserID:       user.ID,
		MedicationID: medication.ID,
		Status:       entity.MedicationRequestStatusPending,
		RequestedAt:  time.Now().UTC(),
	}

	if err := u.medicationRequestRepo.Create(db, request); err != nil {
		u.log.Warnf("Failed to create medication request: %+v", err)
		return nil, err
	}

	request.Medication = *medication
	return converter.MedicationRequestToResponse(request), nil
}

func (u *medicationRequestUsecase) Get(ctx context.Context, userID, id uint) (*dto.MedicationRequestResponse, error) {
	request, err := u.medicationRequestRepo.FindByIDForOwner(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to find medication request by ID: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrMedicationRequestNotFound
	}

	return converter.MedicationRequestToResponse(request), nil
}
