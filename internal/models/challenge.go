package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultRating        = 3
	DefaultChallengeDays = 7
)

// ChallengeLog is one day's entry in a challenge.
type ChallengeLog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Symptom  []Symptom          `bson:"symptom" json:"symptom" validate:"dive"`
	Date     time.Time          `bson:"date" json:"date"`
	Rating   int                `bson:"rating" json:"rating" validate:"min=1,max=5"`
	Mood     int                `bson:"mood" json:"mood" validate:"required,min=1,max=5"`
	Complete Completion         `bson:"complete" json:"complete" validate:"required,completion"`
}

func (l *ChallengeLog) ApplyDefaults(now time.Time) {
	for i := range l.Symptom {
		l.Symptom[i].ApplyDefaults(now)
	}
	if l.Date.IsZero() {
		l.Date = now
	}
	l.Date = dateOf(l.Date)
	if l.Rating == 0 {
		l.Rating = DefaultRating
	}
}

// Challenge tests a hunch by changing one habit for a period.
type Challenge struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Action    ChallengeAction    `bson:"action" json:"action" validate:"required,challenge_action"`
	Hunch     Hunch              `bson:"hunch" json:"hunch"`
	Log       []ChallengeLog     `bson:"log" json:"log" validate:"dive"`
	State     *ChallengeState    `bson:"state" json:"state" validate:"required,challenge_state"`
	Status    Status             `bson:"status" json:"status" validate:"status"`
	StartDate time.Time          `bson:"start_date" json:"start_date"`
	EndDate   time.Time          `bson:"end_date" json:"end_date"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	CreatedTS time.Time          `bson:"created_ts" json:"created_ts"`
}

// ApplyDefaults starts the challenge on the creation date and, unless an
// end date was given, ends it DefaultChallengeDays later.
func (c *Challenge) ApplyDefaults(now time.Time) {
	c.Hunch.ApplyDefaults(now)
	for i := range c.Log {
		c.Log[i].ApplyDefaults(now)
	}
	if c.State == nil {
		state := StateActive
		c.State = &state
	}
	defaultStatus(&c.Status)
	defaultTime(&c.CreatedTS, now)

	if c.StartDate.IsZero() {
		c.StartDate = c.CreatedTS
	}
	c.StartDate = dateOf(c.StartDate)
	if c.EndDate.IsZero() {
		c.EndDate = c.StartDate.AddDate(0, 0, DefaultChallengeDays)
	}
	c.EndDate = dateOf(c.EndDate)
}

func (c *Challenge) CurrentState() ChallengeState {
	if c.State == nil {
		return StateActive
	}
	return *c.State
}
