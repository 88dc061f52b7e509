package highlight

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	DefaultLanguage = "python"
	DefaultStyle    = "friendly"
)

// Choice is one selectable option: the stored value and its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Built once per process from the chroma registries.
var (
	languageChoices, languageLexers = buildLanguageChoices()
	styleChoices                    = buildStyleChoices()
	styleSet                        = choiceSet(styleChoices)
)

// buildLanguageChoices lists every lexer with at least one alias as
// (first alias, display name), sorted by display name. The map resolves a
// value to the lexer it was listed for; chroma's own lookup prefers names
// over aliases and can pick a different lexer.
func buildLanguageChoices() ([]Choice, map[string]chroma.Lexer) {
	byValue := make(map[string]chroma.Lexer)
	var choices []Choice
	for _, lexer := range lexers.GlobalLexerRegistry.Lexers {
		cfg := lexer.Config()
		if cfg == nil || len(cfg.Aliases) == 0 {
			continue
		}
		key := cfg.Aliases[0]
		if _, ok := byValue[key]; ok {
			continue
		}
		byValue[key] = lexer
		choices = append(choices, Choice{Value: key, Label: cfg.Name})
	}
	sortChoices(choices)
	return choices, byValue
}

func buildStyleChoices() []Choice {
	names := styles.Names()
	choices := make([]Choice, 0, len(names))
	for _, name := range names {
		choices = append(choices, Choice{Value: name, Label: name})
	}
	sortChoices(choices)
	return choices
}

func sortChoices(choices []Choice) {
	sort.SliceStable(choices, func(i, j int) bool {
		li, lj := strings.ToLower(choices[i].Label), strings.ToLower(choices[j].Label)
		if li == lj {
			return choices[i].Value < choices[j].Value
		}
		return li < lj
	})
}

func choiceSet(choices []Choice) map[string]bool {
	set := make(map[string]bool, len(choices))
	for _, c := range choices {
		set[c.Value] = true
	}
	return set
}

// LanguageChoices returns a copy of the language option list.
func LanguageChoices() []Choice {
	return append([]Choice(nil), languageChoices...)
}

// StyleChoices returns a copy of the style option list.
func StyleChoices() []Choice {
	return append([]Choice(nil), styleChoices...)
}

func IsLanguage(value string) bool {
	_, ok := languageLexers[value]
	return ok
}

// lexerFor returns the lexer listed under value, or nil.
func lexerFor(value string) chroma.Lexer {
	return languageLexers[value]
}

func IsStyle(value string) bool {
	return styleSet[value]
}
