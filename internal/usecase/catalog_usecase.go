package usecase

import (
	"context"
	"strconv"

	"github.com/josephsae/healthhub-app/internal/converter"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/internal/service"
	"github.com/josephsae/healthhub-app/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialistNotFound = apperror.NotFound("SPECIALIST_NOT_FOUND", "Specialist does not exist")
	ErrMedicationNotFound = apperror.NotFound("MEDICATION_NOT_FOUND", "Medication does not exist")
)

// CatalogUsecase serves the read-only reference data: specialists and
// medications.
type CatalogUsecase interface {
	ListSpecialists(ctx context.Context) (*dto.SpecialistListResponse, error)
	GetSpecialist(ctx context.Context, id uint) (*dto.SpecialistResponse, error)
	ListMedications(ctx context.Context) (*dto.MedicationListResponse, error)
}

type catalogUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialistRepo repository.SpecialistRepository
	medicationRepo repository.MedicationRepository
	cache          *service.CatalogCache
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialistRepo repository.SpecialistRepository,
	medicationRepo repository.MedicationRepository,
	cache *service.CatalogCache,
) CatalogUsecase {
	return &catalogUsecase{
		db:             db,
		log:            log,
		specialistRepo: specialistRepo,
		medicationRepo: medicationRepo,
		cache:          cache,
	}
}

func (u *catalogUsecase) ListSpecialists(ctx context.Context) (*dto.SpecialistListResponse, error) {
	specialists, err := service.Remember(ctx, u.cache, service.CatalogKeySpecialists, func() ([]dto.SpecialistResponse, error) {
		specialists, err := u.specialistRepo.FindAll(u.db.WithContext(ctx))
		if err != nil {
			u.log.Warnf("Failed to find specialists: %+v", err)
			return nil, err
		}
		return converter.SpecialistsToResponses(specialists), nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SpecialistListResponse{Specialists: specialists}, nil
}

func (u *catalogUsecase) GetSpecialist(ctx context.Context, id uint) (*dto.SpecialistResponse, error) {
	key := service.CatalogKeySpecialist + strconv.FormatUint(uint64(id), 10)
	return service.Remember(ctx, u.cache, key, func() (*dto.SpecialistResponse, error) {
		specialist, err := u.specialistRepo.FindByID(u.db.WithContext(ctx), id)
		if err != nil {
			u.log.Warnf("Failed to find specialist by ID: %+v", err)
			return nil, err
		}
		if specialist == nil {
			return nil, ErrSpecialistNotFound
		}
		return converter.SpecialistToResponse(specialist), nil
	})
}

func (u *catalogUsecase) ListMedications(ctx context.Context) (*dto.MedicationListResponse, error) {
	medications, err := service.Remember(ctx, u.cache, service.CatalogKeyMedications, func() ([]dto.MedicationResponse, error) {
		medications, err := u.medicationRepo.FindAll(u.db.WithContext(ctx))
		if err != nil {
			u.log.Warnf("Failed to find medications: %+v", err)
			return nil, err
		}
		return converter.MedicationsToResponses(medications), nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MedicationListResponse{Medications: medications}, nil
}
