package converter

import (
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
)

func ExaminationResultToResponse(result *entity.ExaminationResult) *dto.ExaminationResultResponse {
	if result == nil {
		return nil
	}

	response := &dto.ExaminationResultResponse{
		ID:            result.ID,
		AppointmentID: result.AppointmentID,
		ExaminationID: result.ExaminationID,
		ProcedureID:   result.ProcedureID,
		ResultData:    result.ResultData,
		Date:          formatTime(result.Date),
	}

	if result.Examination.ID != 0 {
		response.Examination = &dto.ExaminationResponse{
			ID:   result.Examination.ID,
			Name: result.Examination.Name,
		}
	}
	if result.Procedure != nil {
		response.Procedure = &dto.ProcedureResponse{
			ID:   result.Procedure.ID,
			Name: result.Procedure.Name,
		}
	}

	return response
}

func ExaminationResultsToResponses(results []entity.ExaminationResult) []dto.ExaminationResultResponse {
	responses := make([]dto.ExaminationResultResponse, len(results))
	for i := range results {
		responses[i] = *ExaminationResultToResponse(&results[i])
	}
	return responses
}
