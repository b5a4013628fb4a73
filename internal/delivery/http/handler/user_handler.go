package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
	log         *logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		log:         log,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Router /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	if err := h.userUsecase.Register(r.Context(), &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.Message(w, http.StatusCreated, "User registered successfully")
}

// Login handles user login
// @Summary Login user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.ErrorBody
// @Router /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	token, err := h.userUsecase.Login(r.Context(), &req)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, token)
}
