package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Answer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Body      string             `bson:"body" json:"body" validate:"max=1024"`
	Status    Status             `bson:"status" json:"status" validate:"status"`
	UpVote    int                `bson:"up_vote" json:"up_vote" validate:"min=0"`
	DownVote  int                `bson:"down_vote" json:"down_vote" validate:"min=0"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	CreatedTS time.Time          `bson:"created_ts" json:"created_ts"`
}

// Vote is the net score. It is never stored.
func (a Answer) Vote() int {
	return a.UpVote - a.DownVote
}

// MarshalJSON adds the derived vote to the stored fields.
func (a Answer) MarshalJSON() ([]byte, error) {
	type answer Answer
	return json.Marshal(struct {
		answer
		Vote int `json:"vote"`
	}{answer(a), a.Vote()})
}

func (a *Answer) ApplyDefaults(now time.Time) {
	defaultStatus(&a.Status)
	defaultTime(&a.CreatedTS, now)
}

// Questions is a community question about a condition with its answers.
type Questions struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Title     string             `bson:"title" json:"title" validate:"required,max=512"`
	Body      string             `bson:"body" json:"body" validate:"max=1024"`
	Condition HealthCondition    `bson:"condition" json:"condition"`
	Answer    []Answer           `bson:"answer" json:"answer" validate:"dive"`
	Status    Status             `bson:"status" json:"status" validate:"status"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	CreatedTS time.Time          `bson:"created_ts" json:"created_ts"`
}

func (q *Questions) ApplyDefaults(now time.Time) {
	q.Condition.ApplyDefaults(now)
	for i := range q.Answer {
		q.Answer[i].ApplyDefaults(now)
	}
	defaultStatus(&q.Status)
	defaultTime(&q.CreatedTS, now)
}
