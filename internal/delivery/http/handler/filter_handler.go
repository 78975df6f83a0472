package handler

import (
	"encoding/json"
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/querystate"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

// DoctorsPath is the directory resource whose URL the filters rewrite.
const DoctorsPath = "/api/v1/doctors"

// FilterHandler applies one filter change to the URL entry given by the
// request's own query string and answers with the replaced entry.
type FilterHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewFilterHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *FilterHandler {
	return &FilterHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *FilterHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}

	return true
}

func (h *FilterHandler) respond(w http.ResponseWriter, state *dto.FilterStateResponse, err error) {
	if err != nil {
		response.InternalServerError(w, "Failed to update filters")
		return
	}

	response.SuccessWithLocation(w, http.StatusOK, state.Location, "Filters updated successfully", state)
}

func location(r *http.Request) *querystate.Location {
	return querystate.NewLocation(DoctorsPath, r.URL.RawQuery)
}

func (h *FilterHandler) UpdateSearch(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.directoryUsecase.UpdateSearch(r.Context(), location(r), &req)
	h.respond(w, state, err)
}

func (h *FilterHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateConsultationRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.directoryUsecase.UpdateConsultation(r.Context(), location(r), &req)
	h.respond(w, state, err)
}

func (h *FilterHandler) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSpecialtyRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.directoryUsecase.UpdateSpecialty(r.Context(), location(r), &req)
	h.respond(w, state, err)
}

func (h *FilterHandler) UpdateSort(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSortRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.directoryUsecase.UpdateSort(r.Context(), location(r), &req)
	h.respond(w, state, err)
}
