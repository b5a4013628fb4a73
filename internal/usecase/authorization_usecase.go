package usecase

import (
	"context"

	"github.com/josephsae/healthhub-app/internal/converter"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAuthorizationNotFound = apperror.NotFound("AUTHORIZATION_NOT_FOUND", "Authorization does not exist")

type AuthorizationUsecase interface {
	List(ctx context.Context, userID uint) (*dto.AuthorizationListResponse, error)
	Create(ctx context.Context, userID uint, req *dto.CreateAuthorizationRequest) (*dto.AuthorizationResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.AuthorizationResponse, error)
}

type authorizationUsecase struct {
	db                    *gorm.DB
	log                   *logrus.Logger
	authorizationRepo     repository.AuthorizationRepository
	medicationRequestRepo repository.MedicationRequestRepository
	userRepo              repository.UserRepository
}

func NewAuthorizationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	authorizationRepo repository.AuthorizationRepository,
	medicationRequestRepo repository.MedicationRequestRepository,
	userRepo repository.UserRepository,
) AuthorizationUsecase {
	return &authorizationUsecase{
		db:                    db,
		log:                   log,
		authorizationRepo:     authorizationRepo,
		medicationRequestRepo: medicationRequestRepo,
		userRepo:              userRepo,
	}
}

func (u *authorizationUsecase) List(ctx context.Context, userID uint) (*dto.AuthorizationListResponse, error) {
	authorizations, err := u.authorizationRepo.FindAllByOwner(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find authorizations: %+v", err)
		return nil, err
	}

	return &dto.AuthorizationListResponse{
		Authorizations: converter.AuthorizationsToResponses(authorizations),
	}, nil
}

// Create stores a PENDING authorization. Secondary references are resolved
// according to the type's required fields; references the type does not
// require are dropped.
func (u *authorizationUsecase) Create(ctx context.Context, userID uint, req *dto.CreateAuthorizationRequest) (*dto.AuthorizationResponse, error) {
	db := u.db.WithContext(ctx)

	authType := entity.AuthorizationType(req.Type)
	if !authType.Valid() {
		return nil, apperror.Validation(map[string]string{"type": "must be one of: PROCEDURE, MEDICATION_REQUEST"})
	}

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	missing := make(map[string]string)
	for _, field := range authType.RequiredFields() {
		if !authorizationFieldSet(req, field) {
			missing[string(field)] = "is required for type " + req.Type
		}
	}
	if len(missing) > 0 {
		return nil, apperror.Validation(missing)
	}

	authorization := &entity.Authorization{
		UserID:  user.ID,
		Type:    authType,
		Status:  entity.AuthorizationStatusPending,
		Request: req.Request,
	}

	if authType.Requires(entity.AuthorizationFieldMedicationRequestID) {
		medicationRequest, err := u.medicationRequestRepo.FindByIDForOwner(db, req.MedicationRequestID, userID)
		if err != nil {
			u.log.Warnf("Failed to find medication request by ID: %+v", err)
			return nil, err
		}
		if medicationRequest == nil {
			return nil, ErrMedicationRequestNotFound
		}

		authorization.MedicationRequestID = &medicationRequest.ID
		authorization.MedicationRequest = medicationRequest
	}

	if err := u.authorizationRepo.Create(db, authorization); err != nil {
		u.log.Warnf("Failed to create authorization: %+v", err)
		return nil, err
	}

	return converter.AuthorizationToResponse(authorization), nil
}

func (u *authorizationUsecase) Get(ctx context.Context, userID, id uint) (*dto.AuthorizationResponse, error) {
	authorization, err := u.authorizationRepo.FindByIDForOwner(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to find authorization by ID: %+v", err)
		return nil, err
	}
	if authorization == nil {
		return nil, ErrAuthorizationNotFound
	}

	return converter.AuthorizationToResponse(authorization), nil
}

func authorizationFieldSet(req *dto.CreateAuthorizationRequest, field entity.AuthorizationField) bool {
	switch field {
	case entity.AuthorizationFieldMedicationRequestID:
		return req.MedicationRequestID != 0
	default:
		return false
	}
}
