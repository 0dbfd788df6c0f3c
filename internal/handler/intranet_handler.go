package handler

import (
	"log"
	"net/http"

	"github.com/strataworks/website-api/internal/service"
)

// IntranetHandler serves the employee intranet: the directory listing plus
// placeholder pages for features that are not built yet.
type IntranetHandler struct {
	content *service.ContentService
}

func NewIntranetHandler(content *service.ContentService) *IntranetHandler {
	return &IntranetHandler{content: content}
}

func (h *IntranetHandler) Employees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.content.Employees(r.Context())
	if err != nil {
		log.Printf("intranet: list employees failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"employees": employees})
}

func (h *IntranetHandler) Profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee profiles are coming soon"})
}

func (h *IntranetHandler) Resources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee resources are coming soon"})
}

func (h *IntranetHandler) Projects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project tracking is coming soon"})
}
