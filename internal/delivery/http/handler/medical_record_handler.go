package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"

	"github.com/sirupsen/logrus"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	log           *logrus.Logger
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, log *logrus.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		log:           log,
	}
}

func (h *MedicalRecordHandler) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	records, err := h.recordUsecase.List(r.Context(), userID)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, records)
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.MedicalRecordEnvelope{MedicalRecord: record})
}

// DownloadMedicalRecord streams the record as an attachment once every
// lookup has succeeded.
func (h *MedicalRecordHandler) DownloadMedicalRecord(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownedResource(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	doc, err := h.recordUsecase.Download(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+doc.FileName)
	w.WriteHeader(http.StatusOK)
	if _, err := doc.Body.WriteTo(w); err != nil {
		h.log.Warnf("Failed to stream medical record document: %+v", err)
	}
}
