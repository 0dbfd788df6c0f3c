package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/strataworks/website-api/internal/middleware"
	"github.com/strataworks/website-api/internal/models"
	"github.com/strataworks/website-api/internal/service"
)

type CareersHandler struct {
	submissions *service.SubmissionService
	content     *service.ContentService
}

func NewCareersHandler(submissions *service.SubmissionService, content *service.ContentService) *CareersHandler {
	return &CareersHandler{submissions: submissions, content: content}
}

// Apply runs the job-application pipeline.
func (h *CareersHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req models.ApplicationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.submissions.Submit(r.Context(), &req, middleware.ClientIP(r))
	if err != nil {
		var reject *service.RejectError
		switch {
		case errors.As(err, &reject):
			writeError(w, http.StatusBadRequest, reject.Reason)
		case errors.Is(err, service.ErrRateLimited):
			writeError(w, http.StatusTooManyRequests, "Too many submissions. Please try again later.")
		default:
			log.Printf("apply: submission failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": msg,
	})
}

func (h *CareersHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.content.Jobs(r.Context())
	if err != nil {
		log.Printf("careers: list jobs failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// RecordApplication accepts an arbitrary application document and persists
// it under the APPLICATIONS partition.
func (h *CareersHandler) RecordApplication(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.content.RecordApplication(r.Context(), payload)
	if err != nil {
		log.Printf("careers: record application failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "Application received",
		"applicationId": id,
	})
}
