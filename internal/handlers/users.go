package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

type ListUsersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
	Total   int64         `json:"total"`
	HasMore bool          `json:"has_more"`
}

// ListUsers is read-only; each user carries the IDs of their snippets.
func ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	limit, skip := parsePagination(r)
	users, total, err := services.ListUsers(ctx, limit, skip)
	if err != nil {
		log.Printf("❌ list users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, ListUsersResponse{
		Success: true,
		Users:   users,
		Total:   total,
		HasMore: int64(skip+len(users)) < total,
	})
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	user, err := services.GetUser(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("❌ get user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{Success: true, User: user})
}
