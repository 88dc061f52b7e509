package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Document interface{} `json:"document,omitempty"`
}

type DocumentListResponse[T any] struct {
	Success   bool  `json:"success"`
	Documents []T   `json:"documents"`
	Total     int64 `json:"total"`
	HasMore   bool  `json:"has_more"`
}

// documentHandlers serves CRUD for one health collection.
type documentHandlers[T any, PT services.DocumentPtr[T]] struct {
	store *services.DocumentStore[T, PT]
}

// MountDocuments registers list, create, retrieve, update and delete for a
// store under pattern. extra adds collection-specific routes to the same subrouter.
func MountDocuments[T any, PT services.DocumentPtr[T]](r chi.Router, pattern string, store *services.DocumentStore[T, PT], extra ...func(chi.Router)) {
	h := &documentHandlers[T, PT]{store: store}
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.replace)
		r.Patch("/{id}", h.patch)
		r.Delete("/{id}", h.delete)
		for _, fn := range extra {
			fn(r)
		}
	})
}

func (h *documentHandlers[T, PT]) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case writeValidationError(w, err):
	case errors.Is(err, services.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, "Document not found")
	default:
		log.Printf("❌ %s: %v", h.store.Spec.Name, err)
		writeError(w, http.StatusInternalServerError, "Database error")
	}
}

func (h *documentHandlers[T, PT]) list(w http.ResponseWriter, r *http.Request) {
	status := models.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: `"` + string(status) + `" is not a valid choice.`, Field: "status"})
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	limit, skip := parsePagination(r)
	docs, total, err := h.store.List(ctx, services.ListQuery{Status: status, Limit: int64(limit), Skip: int64(skip)})
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DocumentListResponse[T]{
		Success:   true,
		Documents: docs,
		Total:     total,
		HasMore:   int64(skip+len(docs)) < total,
	})
}

func (h *documentHandlers[T, PT]) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	doc := PT(new(T))
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc.SetDocumentID(primitive.NilObjectID)
	if a, ok := any(doc).(models.Authored); ok {
		a.SetCreatedBy(userID.String())
	}
	if ts, ok := any(doc).(models.Timestamped); ok {
		ts.SetCreationTimes(models.CreationTimes{})
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.store.Create(ctx, doc); err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, DocumentResponse{Success: true, Message: "Created", Document: doc})
}

func (h *documentHandlers[T, PT]) get(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseDocumentID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	doc, err := h.store.Get(ctx, id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DocumentResponse{Success: true, Document: doc})
}

func (h *documentHandlers[T, PT]) replace(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *documentHandlers[T, PT]) patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// update rewrites a stored document. PUT starts from an empty document so
// omitted fields fall back to defaults; PATCH decodes onto the stored one.
// The id, author and creation times always come from the stored document.
func (h *documentHandlers[T, PT]) update(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := services.ParseDocumentID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	stored, err := h.store.Get(ctx, id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if !canModify(stored, userID.String()) {
		writeError(w, http.StatusForbidden, "Only the author can modify this document")
		return
	}

	var author string
	if a, ok := any(stored).(models.Authored); ok {
		author = a.CreatedByID()
	}
	var times models.CreationTimes
	if ts, ok := any(stored).(models.Timestamped); ok {
		times = ts.CreationTimes()
	}

	doc := stored
	if !partial {
		doc = PT(new(T))
	}
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc.SetDocumentID(id)
	if a, ok := any(doc).(models.Authored); ok {
		a.SetCreatedBy(author)
	}
	if ts, ok := any(doc).(models.Timestamped); ok {
		ts.SetCreationTimes(times)
	}

	if err := h.store.Replace(ctx, doc); err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DocumentResponse{Success: true, Message: "Updated", Document: doc})
}

func (h *documentHandlers[T, PT]) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := services.ParseDocumentID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	doc, err := h.store.Get(ctx, id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if !canModify(doc, userID.String()) {
		writeError(w, http.StatusForbidden, "Only the author can delete this document")
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DocumentResponse{Success: true, Message: "Deleted"})
}

// canModify allows the author, or anyone for documents without a recorded author.
func canModify(doc interface{}, userID string) bool {
	a, ok := doc.(models.Authored)
	if !ok || a.CreatedByID() == "" {
		return true
	}
	return a.CreatedByID() == userID
}
