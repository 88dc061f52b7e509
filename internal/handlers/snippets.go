package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

// SnippetRequest carries the writable snippet fields. Nil fields are left
// unchanged by PATCH and reset to their defaults by PUT and POST.
type SnippetRequest struct {
	Title    *string `json:"title"`
	Code     *string `json:"code"`
	Linenos  *bool   `json:"linenos"`
	Language *string `json:"language"`
	Style    *string `json:"style"`
}

func (req SnippetRequest) applyTo(s *models.Snippet, partial bool) {
	if !partial {
		s.Title, s.Code, s.Linenos, s.Language, s.Style = "", "", false, "", ""
	}
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Code != nil {
		s.Code = *req.Code
	}
	if req.Linenos != nil {
		s.Linenos = *req.Linenos
	}
	if req.Language != nil {
		s.Language = *req.Language
	}
	if req.Style != nil {
		s.Style = *req.Style
	}
}

type SnippetResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Snippet *models.Snippet `json:"snippet,omitempty"`
}

type ListSnippetsResponse struct {
	Success  bool             `json:"success"`
	Snippets []models.Snippet `json:"snippets"`
	Total    int64            `json:"total"`
	HasMore  bool             `json:"has_more"`
}

func snippetID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// writeSnippetError maps service errors: field errors 400, missing 404, anything else 500.
func writeSnippetError(w http.ResponseWriter, err error) {
	switch {
	case writeValidationError(w, err):
	case errors.Is(err, services.ErrSnippetNotFound):
		writeError(w, http.StatusNotFound, "Snippet not found")
	default:
		log.Printf("❌ snippet: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save snippet")
	}
}

// ListSnippets returns snippets oldest first.
func ListSnippets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	limit, skip := parsePagination(r)
	snippets, total, err := services.ListSnippets(ctx, limit, skip)
	if err != nil {
		log.Printf("❌ list snippets: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch snippets")
		return
	}

	writeJSON(w, http.StatusOK, ListSnippetsResponse{
		Success:  true,
		Snippets: snippets,
		Total:    total,
		HasMore:  int64(skip+len(snippets)) < total,
	})
}

// CreateSnippet stores a snippet owned by the signed-in user.
func CreateSnippet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req SnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	owner, err := services.GetUsernameByID(ctx, userID.String())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	snippet := &models.Snippet{OwnerID: userID.String(), Owner: owner}
	req.applyTo(snippet, false)

	if err := services.SaveSnippet(ctx, snippet); err != nil {
		writeSnippetError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SnippetResponse{Success: true, Message: "Snippet created", Snippet: snippet})
}

func GetSnippet(w http.ResponseWriter, r *http.Request) {
	id, ok := snippetID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Snippet not found")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	snippet, err := services.GetSnippet(ctx, id)
	if err != nil {
		writeSnippetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SnippetResponse{Success: true, Snippet: snippet})
}

// SnippetHighlight serves the stored rendering as a standalone page.
func SnippetHighlight(w http.ResponseWriter, r *http.Request) {
	id, ok := snippetID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	snippet, err := services.GetSnippet(ctx, id)
	if errors.Is(err, services.ErrSnippetNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch snippet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(snippet.Highlighted))
}

func UpdateSnippet(w http.ResponseWriter, r *http.Request) {
	updateSnippet(w, r, false)
}

func PatchSnippet(w http.ResponseWriter, r *http.Request) {
	updateSnippet(w, r, true)
}

func updateSnippet(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := snippetID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Snippet not found")
		return
	}

	var req SnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	snippet, err := services.GetSnippet(ctx, id)
	if err != nil {
		writeSnippetError(w, err)
		return
	}
	if snippet.OwnerID != userID.String() {
		writeError(w, http.StatusForbidden, "Only the owner can modify this snippet")
		return
	}

	req.applyTo(snippet, partial)
	if err := services.SaveSnippet(ctx, snippet); err != nil {
		writeSnippetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SnippetResponse{Success: true, Message: "Snippet updated", Snippet: snippet})
}

func DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := snippetID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Snippet not found")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	snippet, err := services.GetSnippet(ctx, id)
	if err != nil {
		writeSnippetError(w, err)
		return
	}
	if snippet.OwnerID != userID.String() {
		writeError(w, http.StatusForbidden, "Only the owner can delete this snippet")
		return
	}

	if err := services.DeleteSnippet(ctx, id); err != nil {
		writeSnippetError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
