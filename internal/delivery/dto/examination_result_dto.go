package dto

type ExaminationResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProcedureResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ExaminationResultResponse struct {
	ID            uint                 `json:"id"`
	AppointmentID uint                 `json:"appointmentId"`
	ExaminationID uint                 `json:"examinationId"`
	ProcedureID   *uint                `json:"procedureId"`
	ResultData    string               `json:"resultData"`
	Date          string               `json:"date"`
	Examination   *ExaminationResponse `json:"examination,omitempty"`
	Procedure     *ProcedureResponse   `json:"procedure,omitempty"`
}

type ExaminationResultListResponse struct {
	ExaminationResults []ExaminationResultResponse `json:"examinationResults"`
}

type ExaminationResultEnvelope struct {
	ExaminationResult *ExaminationResultResponse `json:"examinationResult"`
}
