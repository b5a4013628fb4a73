package dto

// Request DTOs

type CreateAppointmentRequest struct {
	SpecialistID uint   `json:"specialistId" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required,iso8601"`
	Reason       string `json:"reason" validate:"required,min=1"`
}

// UpdateAppointmentRequest is a partial update; nil fields keep their value.
type UpdateAppointmentRequest struct {
	SpecialistID *uint   `json:"specialistId" validate:"omitnil,gt=0"`
	Date         *string `json:"date" validate:"omitnil,iso8601"`
	Reason       *string `json:"reason" validate:"omitnil,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                 uint                        `json:"id"`
	UserID             uint                        `json:"userId"`
	SpecialistID       uint                        `json:"specialistId"`
	Date               string                      `json:"date"`
	Reason             string                      `json:"reason"`
	Specialist         *SpecialistResponse         `json:"specialist,omitempty"`
	ExaminationResults []ExaminationResultResponse `json:"examinationResults,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type AppointmentEnvelope struct {
	Message     string               `json:"message,omitempty"`
	Appointment *AppointmentResponse `json:"appointment"`
}
