// Package seed builds demo data for local development: accounts and
// snippets in PostgreSQL, health-tracking documents in MongoDB.
package seed

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/AnshRaj112/cinnamon-backend/internal/highlight"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/AnshRaj112/cinnamon-backend/pkg/utils"
	"github.com/brianvoe/gofakeit/v6"
)

var codeSamples = map[string][]string{
	"python": {
		"def greet(name):\n    return f\"Hello, {name}!\"\n\nprint(greet(\"world\"))\n",
		"import statistics\n\nmoods = [3, 4, 2, 5, 4]\nprint(statistics.mean(moods))\n",
	},
	"go": {
		"package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}\n",
	},
	"bash": {
		"#!/usr/bin/env bash\nset -euo pipefail\nfor f in *.log; do\n  gzip \"$f\"\ndone\n",
	},
	"sql": {
		"SELECT s.title, u.username\nFROM snippets s\nJOIN users u ON u.id = s.owner_id\nORDER BY s.created;\n",
	},
}

var seedStyles = []string{"friendly", "monokai", "github", "dracula", "solarized-dark"}

var seedConditions = []string{
	"Migraine", "Eczema", "Acid Reflux", "Insomnia", "IBS", "Seasonal Allergies", "Fatigue", "Acne",
}

var seedTriggers = []string{
	"Dairy", "Gluten", "Caffeine", "Sugar", "Alcohol", "Late screens", "Low water intake", "Stress",
}

// Factory builds unsaved records with gofakeit. A fixed seed gives
// repeatable output.
type Factory struct {
	fake      *gofakeit.Faker
	languages []string
	styles    []string
}

func NewFactory(seed int64) *Factory {
	f := &Factory{fake: gofakeit.New(seed)}
	for lang := range codeSamples {
		if highlight.IsLanguage(lang) {
			f.languages = append(f.languages, lang)
		}
	}
	if len(f.languages) == 0 {
		f.languages = []string{highlight.DefaultLanguage}
	}
	// map order is random; keep seeded output stable
	sort.Strings(f.languages)
	for _, s := range seedStyles {
		if highlight.IsStyle(s) {
			f.styles = append(f.styles, s)
		}
	}
	if len(f.styles) == 0 {
		f.styles = []string{highlight.DefaultStyle}
	}
	return f
}

// Username returns a name that passes utils.ValidateUsername.
func (f *Factory) Username() string {
	var b strings.Builder
	for _, r := range f.fake.Username() {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	name := truncate(b.String(), utils.MaxUsernameLength-4)
	if len(name) == 0 {
		name = "user"
	}
	return utils.NormalizeUsername(fmt.Sprintf("%s%d", name, f.fake.Number(100, 9999)))
}

// Snippet builds an unsaved snippet for ownerID.
func (f *Factory) Snippet(ownerID string) *models.Snippet {
	lang := f.fake.RandomString(f.languages)
	samples := codeSamples[lang]
	code := "print(1)\n"
	if len(samples) > 0 {
		code = samples[f.fake.Number(0, len(samples)-1)]
	}
	return &models.Snippet{
		Title:    truncate(f.fake.HackerPhrase(), 100),
		Code:     code,
		Linenos:  f.fake.Bool(),
		Language: lang,
		Style:    f.fake.RandomString(f.styles),
		OwnerID:  ownerID,
	}
}

func (f *Factory) IntroQuestion() *models.IntroQuestion {
	return &models.IntroQuestion{
		Body: truncate(fmt.Sprintf("How often do you %s?", strings.ToLower(f.fake.Verb())), 100),
	}
}

func (f *Factory) Symptom(createdBy string) *models.Symptom {
	return &models.Symptom{
		Name:        truncate(capitalize(f.fake.Adjective())+" "+f.fake.NounAbstract(), 50),
		Description: truncate(f.fake.Sentence(12), 255),
		CreatorType: models.CreatorUser,
		CreatedBy:   createdBy,
	}
}

func (f *Factory) Article(createdBy string) *models.Article {
	return &models.Article{
		Title:     truncate(f.fake.Sentence(6), 255),
		Body:      truncate(f.fake.Paragraph(2, 3, 10, "\n\n"), 1024),
		Link:      f.fake.URL(),
		TS:        f.fake.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).UTC(),
		CreatedBy: createdBy,
	}
}

func (f *Factory) Hunch(createdBy string) *models.Hunch {
	h := &models.Hunch{
		Name:        truncate(f.fake.RandomString(seedTriggers), 50),
		Description: truncate(f.fake.Sentence(10), 255),
		CreatedBy:   createdBy,
	}
	for i := 0; i < f.fake.Number(1, 3); i++ {
		h.Tip = append(h.Tip, models.HunchTip{Body: truncate(f.fake.Sentence(14), 510)})
	}
	h.Article = append(h.Article, *f.Article(createdBy))
	h.Symptom = append(h.Symptom, *f.Symptom(createdBy))
	return h
}

func (f *Factory) HealthCondition(createdBy string) *models.HealthCondition {
	c := &models.HealthCondition{
		Name:        truncate(f.fake.RandomString(seedConditions), 50),
		Description: truncate(f.fake.Sentence(10), 255),
		CreatedBy:   createdBy,
	}
	for i := 0; i < 2; i++ {
		c.IntroQuestion = append(c.IntroQuestion, *f.IntroQuestion())
	}
	c.Hunch = append(c.Hunch, *f.Hunch(createdBy))
	return c
}

func (f *Factory) ChallengeLog(day time.Time) *models.ChallengeLog {
	return &models.ChallengeLog{
		Date:   day,
		Rating: f.fake.Number(1, 5),
		Mood:   f.fake.Number(1, 5),
		Complete: models.Completion(f.fake.RandomString([]string{
			string(models.CompletionYes),
			string(models.CompletionMostlyYes),
			string(models.CompletionMostlyNo),
			string(models.CompletionNope),
		})),
	}
}

// Challenge builds a challenge with one log entry per elapsed day.
func (f *Factory) Challenge(createdBy string, hunch models.Hunch) *models.Challenge {
	start := time.Now().UTC().AddDate(0, 0, -f.fake.Number(0, models.DefaultChallengeDays-1))
	c := &models.Challenge{
		Action: models.ChallengeAction(f.fake.RandomString([]string{
			string(models.ActionEliminating),
			string(models.ActionIncreasing),
			string(models.ActionSupplementing),
		})),
		Hunch:     hunch,
		StartDate: start,
		CreatedBy: createdBy,
	}
	for d := start; !d.After(time.Now().UTC()); d = d.AddDate(0, 0, 1) {
		c.Log = append(c.Log, *f.ChallengeLog(d))
	}
	return c
}

func (f *Factory) Answer(createdBy string) *models.Answer {
	return &models.Answer{
		Body:      truncate(f.fake.Paragraph(1, 3, 12, " "), 1024),
		UpVote:    f.fake.Number(0, 40),
		DownVote:  f.fake.Number(0, 10),
		CreatedBy: createdBy,
	}
}

func (f *Factory) Question(createdBy string, condition models.HealthCondition, answers []models.Answer) *models.Questions {
	return &models.Questions{
		Title:     truncate(f.fake.Question(), 512),
		Body:      truncate(f.fake.Paragraph(1, 2, 12, " "), 1024),
		Condition: condition,
		Answer:    answers,
		CreatedBy: createdBy,
	}
}

func (f *Factory) Statistic(condition models.HealthCondition, hunch models.Hunch, users []string) *models.Statistic {
	return &models.Statistic{
		Body:      truncate(fmt.Sprintf("%d people linked %s to %s.", len(users), hunch.Name, condition.Name), 1024),
		Condition: condition,
		Hunch:     hunch,
		Users:     users,
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
