package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"

	"github.com/sirupsen/logrus"
)

type ExaminationResultHandler struct {
	resultUsecase usecase.ExaminationResultUsecase
	log           *logrus.Logger
}

func NewExaminationResultHandler(resultUsecase usecase.ExaminationResultUsecase, log *logrus.Logger) *ExaminationResultHandler {
	return &ExaminationResultHandler{
		resultUsecase: resultUsecase,
		log:           log,
	}
}

func (h *ExaminationResultHandler) ListExaminationResults(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	results, err := h.resultUsecase.List(r.Context(), userID)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, results)
}

func (h *ExaminationResultHandler) GetExaminationResult(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	result, err := h.resultUsecase.Get(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.ExaminationResultEnvelope{ExaminationResult: result})
}
