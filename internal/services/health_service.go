package services

import (
	"context"

	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	IntroQuestions   = NewDocumentStore[models.IntroQuestion](IntroQuestionCollection)
	Symptoms         = NewDocumentStore[models.Symptom](SymptomCollection)
	Hunches          = NewDocumentStore[models.Hunch](HunchCollection)
	HealthConditions = NewDocumentStore[models.HealthCondition](HealthConditionCollection)
	Articles         = NewDocumentStore[models.Article](ArticleCollection)
	ChallengeLogs    = NewDocumentStore[models.ChallengeLog](ChallengeLogCollection)
	Challenges       = NewDocumentStore[models.Challenge](ChallengeCollection)
	Answers          = NewDocumentStore[models.Answer](AnswerCollection)
	Questions        = NewDocumentStore[models.Questions](QuestionsCollection)
	Statistics       = NewDocumentStore[models.Statistic](StatisticCollection)
)

// VoteAnswer adds one up or down vote to an answer.
func VoteAnswer(ctx context.Context, id primitive.ObjectID, up bool) (*models.Answer, error) {
	field := "down_vote"
	if up {
		field = "up_vote"
	}
	return Answers.Increment(ctx, id, field, 1)
}
