package handler

import (
	"net/http"

	"go-salon-scheduling/internal/converter"
	"go-salon-scheduling/internal/delivery/dto"
	"go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/pkg/response"

	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	directory repository.ProfessionalDirectory
}

func NewProfessionalHandler(directory repository.ProfessionalDirectory) *ProfessionalHandler {
	return &ProfessionalHandler{directory: directory}
}

func (h *ProfessionalHandler) GetAllProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.directory.FindAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	})
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professional, err := h.directory.FindByID(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get professional")
		return
	}
	if professional == nil {
		response.NotFound(w, "Professional not found")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", converter.ProfessionalToResponse(professional))
}
