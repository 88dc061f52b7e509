package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IntroQuestion is asked when a user first describes a condition.
type IntroQuestion struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Body   string             `bson:"body" json:"body" validate:"required,max=100"`
	Status Status             `bson:"status" json:"status" validate:"status"`
}

func (q *IntroQuestion) ApplyDefaults(time.Time) { defaultStatus(&q.Status) }

type Symptom struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Name        string             `bson:"name" json:"name" validate:"required,max=50"`
	Description string             `bson:"description" json:"description" validate:"max=255"`
	CreatorType CreatorType        `bson:"creator_type" json:"creator_type" validate:"creator_type"`
	Status      Status             `bson:"status" json:"status" validate:"status"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedTS   time.Time          `bson:"created_ts" json:"created_ts"`
}

func (s *Symptom) ApplyDefaults(now time.Time) {
	defaultCreatorType(&s.CreatorType)
	defaultStatus(&s.Status)
	defaultTime(&s.CreatedTS, now)
}

// HunchTip only ever lives inside a Hunch.
type HunchTip struct {
	Body   string `bson:"body" json:"body" validate:"max=510"`
	Status Status `bson:"status" json:"status" validate:"status"`
}

func (t *HunchTip) ApplyDefaults(time.Time) { defaultStatus(&t.Status) }

// Hunch is a suspected trigger, backed by articles and linked symptoms.
type Hunch struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Name        string             `bson:"name" json:"name" validate:"required,max=50"`
	Description string             `bson:"description" json:"description" validate:"max=255"`
	Tip         []HunchTip         `bson:"tip" json:"tip" validate:"dive"`
	Status      Status             `bson:"status" json:"status" validate:"status"`
	Article     []Article          `bson:"article" json:"article" validate:"dive"`
	Symptom     []Symptom          `bson:"symptom" json:"symptom" validate:"dive"`
	CreatorType CreatorType        `bson:"creator_type" json:"creator_type" validate:"creator_type"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedTS   time.Time          `bson:"created_ts" json:"created_ts"`
}

func (h *Hunch) ApplyDefaults(now time.Time) {
	for i := range h.Tip {
		h.Tip[i].ApplyDefaults(now)
	}
	for i := range h.Article {
		h.Article[i].ApplyDefaults(now)
	}
	for i := range h.Symptom {
		h.Symptom[i].ApplyDefaults(now)
	}
	defaultStatus(&h.Status)
	defaultCreatorType(&h.CreatorType)
	defaultTime(&h.CreatedTS, now)
}

type HealthCondition struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Name          string             `bson:"name" json:"name" validate:"required,max=50"`
	Description   string             `bson:"description" json:"description" validate:"max=255"`
	IntroQuestion []IntroQuestion    `bson:"intro_question" json:"intro_question" validate:"dive"`
	Hunch         []Hunch            `bson:"hunch" json:"hunch" validate:"dive"`
	Status        Status             `bson:"status" json:"status" validate:"status"`
	CreatedBy     string             `bson:"created_by" json:"created_by"`
	CreatedTS     time.Time          `bson:"created_ts" json:"created_ts"`
}

func (c *HealthCondition) ApplyDefaults(now time.Time) {
	for i := range c.IntroQuestion {
		c.IntroQuestion[i].ApplyDefaults(now)
	}
	for i := range c.Hunch {
		c.Hunch[i].ApplyDefaults(now)
	}
	defaultStatus(&c.Status)
	defaultTime(&c.CreatedTS, now)
}

type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Title     string             `bson:"title" json:"title" validate:"required,max=255"`
	Body      string             `bson:"body" json:"body" validate:"required,max=1024"`
	Status    Status             `bson:"status" json:"status" validate:"status"`
	Link      string             `bson:"link" json:"link" validate:"required,url"`
	TS        time.Time          `bson:"ts" json:"ts"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	CreatedTS time.Time          `bson:"created_ts" json:"created_ts"`
}

func (a *Article) ApplyDefaults(now time.Time) {
	defaultStatus(&a.Status)
	defaultTime(&a.TS, now)
	defaultTime(&a.CreatedTS, now)
}

// Statistic aggregates the users who reported a hunch for a condition.
type Statistic struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Body      string             `bson:"body" json:"body" validate:"max=1024"`
	Condition HealthCondition    `bson:"condition" json:"condition"`
	Hunch     Hunch              `bson:"hunch" json:"hunch"`
	Users     []string           `bson:"users" json:"users" validate:"dive,uuid"`
	Status    Status             `bson:"status" json:"status" validate:"status"`
	CreatedTS time.Time          `bson:"created_ts" json:"created_ts"`
}

func (s *Statistic) ApplyDefaults(now time.Time) {
	s.Condition.ApplyDefaults(now)
	s.Hunch.ApplyDefaults(now)
	if s.Users == nil {
		s.Users = []string{}
	}
	defaultStatus(&s.Status)
	defaultTime(&s.CreatedTS, now)
}
