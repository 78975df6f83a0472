package handler

import (
	"net/http"

	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

// ListDoctors renders the directory for the filter carried by the URL.
// Loading and fetch errors are part of the rendered state, not HTTP errors.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filter := middleware.GetFilterFromContext(r)

	doctors, err := h.directoryUsecase.ListDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	filter := middleware.GetFilterFromContext(r)

	suggestions, err := h.directoryUsecase.SuggestDoctors(r.Context(), filter.SearchTerm)
	if err != nil {
		response.InternalServerError(w, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	filter := middleware.GetFilterFromContext(r)

	specialties, err := h.directoryUsecase.ListSpecialties(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
