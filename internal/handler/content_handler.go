package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/strataworks/website-api/internal/service"
)

// ContentHandler serves the public read collections: page content,
// solutions, and partners. Each endpoint is one partition scan wrapped in a
// fixed envelope.
type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) Content(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "content", h.content.Content)
}

func (h *ContentHandler) Solutions(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "solutions", h.content.Solutions)
}

func (h *ContentHandler) Partners(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "partners", h.content.Partners)
}

func (h *ContentHandler) list(w http.ResponseWriter, r *http.Request, envelope string, fetch func(context.Context) ([]json.RawMessage, error)) {
	items, err := fetch(r.Context())
	if err != nil {
		log.Printf("content: list %s failed: %v", envelope, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{envelope: items})
}
