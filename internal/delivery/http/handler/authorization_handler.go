package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AuthorizationHandler struct {
	authorizationUsecase usecase.AuthorizationUsecase
	validator            *validator.CustomValidator
	log                  *logrus.Logger
}

func NewAuthorizationHandler(authorizationUsecase usecase.AuthorizationUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AuthorizationHandler {
	return &AuthorizationHandler{
		authorizationUsecase: authorizationUsecase,
		validator:            validator,
		log:                  log,
	}
}

func (h *AuthorizationHandler) ListAuthorizations(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	authorizations, err := h.authorizationUsecase.List(r.Context(), userID)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, authorizations)
}

func (h *AuthorizationHandler) CreateAuthorization(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	var req dto.CreateAuthorizationRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	authorization, err := h.authorizationUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.AuthorizationEnvelope{
		Message:       "Authorization created successfully",
		Authorization: authorization,
	})
}

func (h *AuthorizationHandler) GetAuthorization(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	authorization, err := h.authorizationUsecase.Get(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AuthorizationEnvelope{Authorization: authorization})
}
