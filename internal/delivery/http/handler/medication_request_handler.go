package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/sirupsen/logrus"
)

type MedicationRequestHandler struct {
	requestUsecase usecase.MedicationRequestUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewMedicationRequestHandler(requestUsecase usecase.MedicationRequestUsecase, validator *validator.CustomValidator, log *logrus.Logger) *MedicationRequestHandler {
	return &MedicationRequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
		log:            log,
	}
}

func (h *MedicationRequestHandler) ListMedicationRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	requests, err := h.requestUsecase.List(r.Context(), userID)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, requests)
}

func (h *MedicationRequestHandler) CreateMedicationRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	var req dto.CreateMedicationRequestRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	request, err := h.requestUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.MedicationRequestEnvelope{
		Message:           "Medication request created successfully",
		MedicationRequest: request,
	})
}

func (h *MedicationRequestHandler) GetMedicationRequest(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	request, err := h.requestUsecase.Get(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.MedicationRequestEnvelope{MedicationRequest: request})
}
