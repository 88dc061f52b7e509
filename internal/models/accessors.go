package models

import "go.mongodb.org/mongo-driver/bson/primitive"

func (q *IntroQuestion) DocumentID() primitive.ObjectID      { return q.ID }
func (q *IntroQuestion) SetDocumentID(id primitive.ObjectID) { q.ID = id }

func (s *Symptom) DocumentID() primitive.ObjectID      { return s.ID }
func (s *Symptom) SetDocumentID(id primitive.ObjectID) { s.ID = id }

func (h *Hunch) DocumentID() primitive.ObjectID      { return h.ID }
func (h *Hunch) SetDocumentID(id primitive.ObjectID) { h.ID = id }

func (c *HealthCondition) DocumentID() primitive.ObjectID      { return c.ID }
func (c *HealthCondition) SetDocumentID(id primitive.ObjectID) { c.ID = id }

func (a *Article) DocumentID() primitive.ObjectID      { return a.ID }
func (a *Article) SetDocumentID(id primitive.ObjectID) { a.ID = id }

func (l *ChallengeLog) DocumentID() primitive.ObjectID      { return l.ID }
func (l *ChallengeLog) SetDocumentID(id primitive.ObjectID) { l.ID = id }

func (c *Challenge) DocumentID() primitive.ObjectID      { return c.ID }
func (c *Challenge) SetDocumentID(id primitive.ObjectID) { c.ID = id }

func (a *Answer) DocumentID() primitive.ObjectID      { return a.ID }
func (a *Answer) SetDocumentID(id primitive.ObjectID) { a.ID = id }

func (q *Questions) DocumentID() primitive.ObjectID      { return q.ID }
func (q *Questions) SetDocumentID(id primitive.ObjectID) { q.ID = id }

func (s *Statistic) DocumentID() primitive.ObjectID      { return s.ID }
func (s *Statistic) SetDocumentID(id primitive.ObjectID) { s.ID = id }

func (s *Symptom) CreatedByID() string        { return s.CreatedBy }
func (s *Symptom) SetCreatedBy(userID string) { s.CreatedBy = userID }

func (h *Hunch) CreatedByID() string        { return h.CreatedBy }
func (h *Hunch) SetCreatedBy(userID string) { h.CreatedBy = userID }

func (c *HealthCondition) CreatedByID() string        { return c.CreatedBy }
func (c *HealthCondition) SetCreatedBy(userID string) { c.CreatedBy = userID }

func (a *Article) CreatedByID() string        { return a.CreatedBy }
func (a *Article) SetCreatedBy(userID string) { a.CreatedBy = userID }

func (c *Challenge) CreatedByID() string        { return c.CreatedBy }
func (c *Challenge) SetCreatedBy(userID string) { c.CreatedBy = userID }

func (a *Answer) CreatedByID() string        { return a.CreatedBy }
func (a *Answer) SetCreatedBy(userID string) { a.CreatedBy = userID }

func (q *Questions) CreatedByID() string        { return q.CreatedBy }
func (q *Questions) SetCreatedBy(userID string) { q.CreatedBy = userID }

func (s *Symptom) CreationTimes() CreationTimes     { return CreationTimes{Created: s.CreatedTS} }
func (s *Symptom) SetCreationTimes(t CreationTimes) { s.CreatedTS = t.Created }

func (h *Hunch) CreationTimes() CreationTimes     { return CreationTimes{Created: h.CreatedTS} }
func (h *Hunch) SetCreationTimes(t CreationTimes) { h.CreatedTS = t.Created }

func (c *HealthCondition) CreationTimes() CreationTimes     { return CreationTimes{Created: c.CreatedTS} }
func (c *HealthCondition) SetCreationTimes(t CreationTimes) { c.CreatedTS = t.Created }

func (a *Article) CreationTimes() CreationTimes     { return CreationTimes{Created: a.CreatedTS} }
func (a *Article) SetCreationTimes(t CreationTimes) { a.CreatedTS = t.Created }

// A log's date is its creation day.
func (l *ChallengeLog) CreationTimes() CreationTimes     { return CreationTimes{Created: l.Date} }
func (l *ChallengeLog) SetCreationTimes(t CreationTimes) { l.Date = t.Created }

func (c *Challenge) CreationTimes() CreationTimes {
	return CreationTimes{Created: c.CreatedTS, Start: c.StartDate}
}

func (c *Challenge) SetCreationTimes(t CreationTimes) {
	c.CreatedTS = t.Created
	c.StartDate = t.Start
}

func (a *Answer) CreationTimes() CreationTimes     { return CreationTimes{Created: a.CreatedTS} }
func (a *Answer) SetCreationTimes(t CreationTimes) { a.CreatedTS = t.Created }

func (q *Questions) CreationTimes() CreationTimes     { return CreationTimes{Created: q.CreatedTS} }
func (q *Questions) SetCreationTimes(t CreationTimes) { q.CreatedTS = t.Created }

func (s *Statistic) CreationTimes() CreationTimes     { return CreationTimes{Created: s.CreatedTS} }
func (s *Statistic) SetCreationTimes(t CreationTimes) { s.CreatedTS = t.Created }
