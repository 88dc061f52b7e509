package routes

import (
	"github.com/AnshRaj112/cinnamon-backend/internal/handlers"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r chi.Router) {
	// Snippets
	r.Get("/snippets", handlers.ListSnippets)
	r.Post("/snippets", handlers.CreateSnippet)
	r.Get("/snippets/{id}", handlers.GetSnippet)
	r.Put("/snippets/{id}", handlers.UpdateSnippet)
	r.Patch("/snippets/{id}", handlers.PatchSnippet)
	r.Delete("/snippets/{id}", handlers.DeleteSnippet)
	r.Get("/snippets/{id}/highlight", handlers.SnippetHighlight)

	// Users (read-only)
	r.Get("/users", handlers.ListUsers)
	r.Get("/users/{id}", handlers.GetUser)

	// Auth
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.Me)

	r.Get("/api/choices", handlers.GetChoices)

	// Health tracking documents
	r.Route("/api/health", func(r chi.Router) {
		handlers.MountDocuments(r, "/intro-questions", services.IntroQuestions)
		handlers.MountDocuments(r, "/symptoms", services.Symptoms)
		handlers.MountDocuments(r, "/hunches", services.Hunches)
		handlers.MountDocuments(r, "/conditions", services.HealthConditions)
		handlers.MountDocuments(r, "/articles", services.Articles)
		handlers.MountDocuments(r, "/challenge-logs", services.ChallengeLogs)
		handlers.MountDocuments(r, "/challenges", services.Challenges)
		handlers.MountDocuments(r, "/answers", services.Answers, handlers.AnswerVoteRoutes)
		handlers.MountDocuments(r, "/questions", services.Questions)
		handlers.MountDocuments(r, "/statistics", services.Statistics)
	})
}
