package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/AnshRaj112/cinnamon-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

type Options struct {
	Users           int
	SnippetsPerUser int
	Conditions      int
	Seed            int64
	Clean           bool
	// DryRun builds and validates everything without touching a store.
	DryRun bool
}

// Summary counts what a run created.
type Summary struct {
	Users      int
	Snippets   int
	Documents  map[string]int
	UserIDs    []string
	SnippetIDs []int64
}

type Seeder struct {
	opts    Options
	factory *Factory
	summary Summary
}

func NewSeeder(opts Options) *Seeder {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return &Seeder{
		opts:    opts,
		factory: NewFactory(opts.Seed),
		summary: Summary{Documents: make(map[string]int)},
	}
}

func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	if s.opts.Clean && !s.opts.DryRun {
		if err := s.clean(ctx); err != nil {
			return nil, fmt.Errorf("clean: %w", err)
		}
	}
	if err := s.seedUsers(ctx); err != nil {
		return nil, err
	}
	if err := s.seedSnippets(ctx); err != nil {
		return nil, err
	}
	if err := s.seedHealth(ctx); err != nil {
		return nil, err
	}
	return &s.summary, nil
}

func (s *Seeder) clean(ctx context.Context) error {
	if _, err := database.PostgresDB.ExecContext(ctx, `TRUNCATE snippets, users RESTART IDENTITY CASCADE`); err != nil {
		return err
	}
	for _, spec := range services.HealthCollections {
		if _, err := database.DB.Collection(spec.Name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("%s: %w", spec.Name, err)
		}
	}
	log.Println("🧹 Cleared snippets, users and health collections")
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	for i := 0; i < s.opts.Users; i++ {
		name := s.factory.Username()
		if err := utils.ValidateUsername(name); err != nil {
			return fmt.Errorf("generated username %q: %w", name, err)
		}
		if s.opts.DryRun {
			s.summary.UserIDs = append(s.summary.UserIDs, s.factory.fake.UUID())
			s.summary.Users++
			continue
		}
		user, err := services.CreateUser(ctx, name, hash)
		if errors.Is(err, services.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return fmt.Errorf("create user %q: %w", name, err)
		}
		s.summary.UserIDs = append(s.summary.UserIDs, user.ID)
		s.summary.Users++
	}
	log.Printf("👤 Seeded %d users", s.summary.Users)
	return nil
}

func (s *Seeder) seedSnippets(ctx context.Context) error {
	for _, ownerID := range s.summary.UserIDs {
		for i := 0; i < s.opts.SnippetsPerUser; i++ {
			snippet := s.factory.Snippet(ownerID)
			if s.opts.DryRun {
				snippet.ApplyDefaults()
				if err := models.Validate(snippet); err != nil {
					return fmt.Errorf("snippet: %w", err)
				}
				s.summary.Snippets++
				continue
			}
			if err := services.SaveSnippet(ctx, snippet); err != nil {
				return fmt.Errorf("save snippet: %w", err)
			}
			s.summary.SnippetIDs = append(s.summary.SnippetIDs, snippet.ID)
			s.summary.Snippets++
		}
	}
	log.Printf("📝 Seeded %d snippets", s.summary.Snippets)
	return nil
}

// seedHealth writes, per condition: the condition itself, its embedded
// pieces as standalone documents, one challenge with logs, a question
// with answers and a statistic.
func (s *Seeder) seedHealth(ctx context.Context) error {
	f := s.factory
	for i := 0; i < s.opts.Conditions; i++ {
		author := s.author()

		condition := f.HealthCondition(author)
		if err := store(ctx, s, services.HealthConditions, condition); err != nil {
			return err
		}
		for j := range condition.IntroQuestion {
			if err := store(ctx, s, services.IntroQuestions, &condition.IntroQuestion[j]); err != nil {
				return err
			}
		}

		hunch := condition.Hunch[0]
		if err := store(ctx, s, services.Hunches, &hunch); err != nil {
			return err
		}
		for j := range hunch.Symptom {
			if err := store(ctx, s, services.Symptoms, &hunch.Symptom[j]); err != nil {
				return err
			}
		}
		for j := range hunch.Article {
			if err := store(ctx, s, services.Articles, &hunch.Article[j]); err != nil {
				return err
			}
		}

		challenge := f.Challenge(author, hunch)
		if err := store(ctx, s, services.Challenges, challenge); err != nil {
			return err
		}
		for j := range challenge.Log {
			if err := store(ctx, s, services.ChallengeLogs, &challenge.Log[j]); err != nil {
				return err
			}
		}

		var answers []models.Answer
		for j := 0; j < f.fake.Number(1, 4); j++ {
			answer := f.Answer(s.author())
			if err := store(ctx, s, services.Answers, answer); err != nil {
				return err
			}
			answers = append(answers, *answer)
		}
		if err := store(ctx, s, services.Questions, f.Question(author, *condition, answers)); err != nil {
			return err
		}

		if err := store(ctx, s, services.Statistics, f.Statistic(*condition, hunch, s.summary.UserIDs)); err != nil {
			return err
		}
	}
	log.Printf("🩺 Seeded health documents: %v", s.summary.Documents)
	return nil
}

func (s *Seeder) author() string {
	if len(s.summary.UserIDs) == 0 {
		return ""
	}
	return s.factory.fake.RandomString(s.summary.UserIDs)
}

// store creates doc in st, or only applies defaults and validates it in a dry run.
func store[T any, PT services.DocumentPtr[T]](ctx context.Context, s *Seeder, st *services.DocumentStore[T, PT], doc PT) error {
	if s.opts.DryRun {
		doc.ApplyDefaults(time.Now().UTC())
		if err := models.Validate(doc); err != nil {
			return fmt.Errorf("%s: %w", st.Spec.Name, err)
		}
	} else if err := st.Create(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", st.Spec.Name, err)
	}
	s.summary.Documents[st.Spec.Name]++
	return nil
}
