package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a top-level health record stored in its own collection.
type Document interface {
	DocumentID() primitive.ObjectID
	SetDocumentID(id primitive.ObjectID)
	// ApplyDefaults fills unset fields, including those of embedded documents.
	ApplyDefaults(now time.Time)
}

// Authored documents record the user who created them.
type Authored interface {
	SetCreatedBy(userID string)
	CreatedByID() string
}

// CreationTimes are set by the server when a document is first stored.
// Start is only used by challenges.
type CreationTimes struct {
	Created time.Time
	Start   time.Time
}

// Timestamped documents carry CreationTimes that clients cannot write.
type Timestamped interface {
	CreationTimes() CreationTimes
	SetCreationTimes(t CreationTimes)
}

// dateOf truncates t to midnight UTC, the storage form of date-only fields.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultStatus(s *Status) {
	if *s == "" {
		*s = StatusActive
	}
}

func defaultCreatorType(c *CreatorType) {
	if *c == "" {
		*c = CreatorSystem
	}
}

func defaultTime(t *time.Time, now time.Time) {
	if t.IsZero() {
		*t = now
	}
}
