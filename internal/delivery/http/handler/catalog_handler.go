package handler

import (
	"net/http"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"

	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	log            *logrus.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		log:            log,
	}
}

func (h *CatalogHandler) ListSpecialists(w http.ResponseWriter, r *http.Request) {
	specialists, err := h.catalogUsecase.ListSpecialists(r.Context())
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, specialists)
}

func (h *CatalogHandler) GetSpecialist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	specialist, err := h.catalogUsecase.GetSpecialist(r.Context(), id)
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.SpecialistEnvelope{Specialist: specialist})
}

func (h *CatalogHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := h.catalogUsecase.ListMedications(r.Context())
	if err != nil {
		response.FromError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, medications)
}
