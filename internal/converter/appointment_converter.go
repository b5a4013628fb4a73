package converter

import (
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:           appointment.ID,
		UserID:       appointment.UserID,
		SpecialistID: appointment.SpecialistID,
		Date:         formatTime(appointment.Date),
		Reason:       appointment.Reason,
	}

	// Include specialist info if it was loaded
	if appointment.Specialist.ID != 0 {
		response.Specialist = SpecialistToResponse(&appointment.Specialist)
	}

	return response
}

// AppointmentsToResponses attaches each appointment's examination results,
// grouped by appointment id.
func AppointmentsToResponses(appointments []entity.Appointment, results []entity.ExaminationResult) []dto.AppointmentResponse {
	byAppointment := make(map[uint][]dto.ExaminationResultResponse, len(appointments))
	for i := range results {
		id := results[i].AppointmentID
		byAppointment[id] = append(byAppointment[id], *ExaminationResultToResponse(&results[i]))
	}

	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		resp.ExaminationResults = byAppointment[appointments[i].ID]
		responses[i] = *resp
	}
	return responses
}
