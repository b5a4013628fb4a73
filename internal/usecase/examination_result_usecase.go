package usecase

import (
	"context"

	"github.com/josephsae/healthhub-app/internal/converter"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrExaminationResultNotFound = apperror.NotFound("EXAMINATION_RESULT_NOT_FOUND", "Examination result does not exist")

// ExaminationResultUsecase is read-only; results are owned through their
// appointment.
type ExaminationResultUsecase interface {
	List(ctx context.Context, userID uint) (*dto.ExaminationResultListResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.ExaminationResultResponse, error)
}

type examinationResultUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	resultRepo repository.ExaminationResultRepository
}

func NewExaminationResultUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	resultRepo repository.ExaminationResultRepository,
) ExaminationResultUsecase {
	return &examinationResultUsecase{
		db:         db,
		log:        log,
		resultRepo: resultRepo,
	}
}

func (u *examinationResultUsecase) List(ctx context.Context, userID uint) (*dto.ExaminationResultListResponse, error) {
	results, err := u.resultRepo.FindAllByOwner(u.db.WithContext(ctx), userID, repository.SortDesc)
	if err != nil {
		u.log.Warnf("Failed to find examination results: %+v", err)
		return nil, err
	}

	return &dto.ExaminationResultListResponse{
		ExaminationResults: converter.ExaminationResultsToResponses(results),
	}, nil
}

func (u *examinationResultUsecase) Get(ctx context.Context, userID, id uint) (*dto.ExaminationResultResponse, error) {
	result, err := u.resultRepo.FindByIDForOwner(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to find examination result by ID: %+v", err)
		return nil, err
	}
	if result == nil {
		return nil, ErrExaminationResultNotFound
	}

	return converter.ExaminationResultToResponse(result), nil
}
