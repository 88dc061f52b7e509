package handlers

import (
	"net/http"

	"github.com/AnshRaj112/cinnamon-backend/internal/highlight"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
)

type ChoicesResponse struct {
	Success         bool               `json:"success"`
	Languages       []highlight.Choice `json:"languages"`
	Styles          []highlight.Choice `json:"styles"`
	Statuses        []models.Choice    `json:"statuses"`
	CreatorTypes    []models.Choice    `json:"creator_types"`
	ChallengeStates []models.Choice    `json:"challenge_states"`
	Actions         []models.Choice    `json:"challenge_actions"`
	Completions     []models.Choice    `json:"completions"`
}

// GetChoices lists every enumerated option set so clients can build selects.
func GetChoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ChoicesResponse{
		Success:         true,
		Languages:       highlight.LanguageChoices(),
		Styles:          highlight.StyleChoices(),
		Statuses:        models.StatusChoices,
		CreatorTypes:    models.CreatorTypeChoices,
		ChallengeStates: models.ChallengeStateChoices,
		Actions:         models.ChallengeActionChoices,
		Completions:     models.CompletionChoices,
	})
}
