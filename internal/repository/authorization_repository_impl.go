package repository

import (
	"errors"

	"github.com/josephsae/healthhub-app/internal/domain/entity"
	domainRepo "github.com/josephsae/healthhub-app/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type authorizationRepository struct{}

func NewAuthorizationRepository() domainRepo.AuthorizationRepository {
	return &authorizationRepository{}
}

func (r *authorizationRepository) Create(db *gorm.DB, authorization *entity.Authorization) error {
	return db.Omit(clause.Associations).Create(authorization).Error
}

func (r *authorizationRepository) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.Authorization, error) {
	var authorization entity.Authorization
	err := db.Preload("MedicationRequest.Medication").
		Scopes(authorizationOwner.OwnedByID(id, userID)).
		First(&authorization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &authorization, nil
}

func (r *authorizationRepository) FindAllByOwner(db *gorm.DB, userID uint) ([]entity.Authorization, error) {
	var authorizations []entity.Authorization
	err := db.Preload("MedicationRequest.Medication").
		Scopes(authorizationOwner.Owned(userID)).
		Order(authorizationOwner.orderColumn("created_at") + " DESC").
		Find(&authorizations).Error
	if err != nil {
		return nil, err
	}
	return authorizations, nil
}
