package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	log                *logrus.Logger
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		log:                log,
	}
}

// ListAppointments handles listing the caller's appointments
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 401 {object} response.ErrorBody
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), userID)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

// CreateAppointment handles booking a new appointment
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} dto.AppointmentEnvelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	var req dto.CreateAppointmentRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.AppointmentEnvelope{
		Message:     "Appointment created successfully",
		Appointment: appointment,
	})
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AppointmentEnvelope{Appointment: appointment})
}

// UpdateAppointment applies a partial update; omitted fields are unchanged.
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AppointmentEnvelope{
		Message:     "Appointment updated successfully",
		Appointment: appointment,
	})
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), userID, id); err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.Message(w, http.StatusOK, "Appointment deleted successfully")
}
