package repository

import (
	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"gorm.io/gorm"
)

type AuthorizationRepository interface {
	Create(db *gorm.DB, authorization *entity.Authorization) error
	FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.Authorization, error)
	FindAllByOwner(db *gorm.DB, userID uint) ([]entity.Authorization, error)
}
