package handlers

import (
	"errors"
	"net/http"

	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

// AnswerVoteRoutes adds upvote and downvote to the answers subrouter.
func AnswerVoteRoutes(r chi.Router) {
	r.Post("/{id}/upvote", voteAnswer(true))
	r.Post("/{id}/downvote", voteAnswer(false))
}

func voteAnswer(up bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r); !ok {
			return
		}
		id, err := services.ParseDocumentID(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Answer not found")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		answer, err := services.VoteAnswer(ctx, id, up)
		if err != nil {
			if errors.Is(err, services.ErrDocumentNotFound) {
				writeError(w, http.StatusNotFound, "Answer not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, DocumentResponse{Success: true, Document: answer})
	}
}
