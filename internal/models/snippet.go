package models

import (
	"fmt"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/highlight"
)

// Snippet is a piece of source code plus its rendered HTML.
type Snippet struct {
	ID       int64     `json:"id"`
	Created  time.Time `json:"created"`
	Title    string    `json:"title" validate:"max=100"`
	Code     string    `json:"code" validate:"required"`
	Linenos  bool      `json:"linenos"`
	Language string    `json:"language" validate:"max=100,language"`
	Style    string    `json:"style" validate:"max=100,style"`
	OwnerID  string    `json:"owner_id"`
	Owner    string    `json:"owner"`
	// Highlight links to the rendered document.
	Highlight string `json:"highlight,omitempty"`

	// Highlighted is derived from the fields above on every save.
	Highlighted string `json:"-"`
}

// ApplyDefaults fills language and style when the client left them out.
func (s *Snippet) ApplyDefaults() {
	if s.Language == "" {
		s.Language = highlight.DefaultLanguage
	}
	if s.Style == "" {
		s.Style = highlight.DefaultStyle
	}
}

func (s *Snippet) HighlightOptions() highlight.Options {
	return highlight.Options{
		Language:    s.Language,
		Style:       s.Style,
		LineNumbers: s.Linenos,
		Title:       s.Title,
	}
}

// HighlightURL is the path serving the rendered document.
func (s *Snippet) HighlightURL() string {
	return fmt.Sprintf("/snippets/%d/highlight", s.ID)
}
