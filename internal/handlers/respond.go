package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/pkg/utils"
)

const (
	MaxPageSize    = 100
	requestTimeout = 5 * time.Second
)

// DefaultPageSize is the page length when a request gives no limit. main overrides it from config.
var DefaultPageSize = 20

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// writeValidationError answers 400 for field errors and reports whether err was one.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: verr.Message, Field: verr.Field})
	return true
}

// parsePagination reads limit (default DefaultPageSize, capped at MaxPageSize) and skip.
func parsePagination(r *http.Request) (limit, skip int) {
	limit = DefaultPageSize
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if s := r.URL.Query().Get("skip"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			skip = n
		}
	}
	return limit, skip
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}
