package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/josephsae/healthhub-app/pkg/apperror"
	"github.com/josephsae/healthhub-app/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists  = apperror.BadRequest("USER_ALREADY_EXISTS", "Username is already taken")
	ErrInvalidCredentials = apperror.BadRequest("INVALID_CREDENTIALS", "Invalid username or password")
	ErrUserNotFound       = apperror.NotFound("USER_NOT_FOUND", "User does not exist")
)

type UserUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type userUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
) UserUsecase {
	return &userUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *userUsecase) Register(ctx context.Context, req *dto.RegisterRequest) error {
	db := u.db.WithContext(ctx)

	existing, err := u.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return err
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
	}

	// The lookup above can race with a concurrent register; the unique index
	// is what actually guarantees one row per username.
	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return ErrUserAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}

	return nil
}

func (u *userUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{Token: token}, nil
}

// isDuplicateKeyError checks for a PostgreSQL unique_violation (23505),
// optionally narrowed to a constraint whose name mentions field.
func isDuplicateKeyError(err error, field string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (field == "" || strings.Contains(pgErr.ConstraintName, field))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
