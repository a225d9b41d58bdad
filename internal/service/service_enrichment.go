package service

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

// enrichmentRule maps a keyword set to the labels assigned on a match.
type enrichmentRule struct {
	category string
	source   string
	pattern  *regexp.Regexp
}

// enrichmentRules are evaluated in order and the first match wins. The order
// is part of the contract: text mentioning both code and math is Coding.
var enrichmentRules = []enrichmentRule{
	newEnrichmentRule(models.CategoryCoding, models.SourceUser,
		"code", "program", "bug", "algorithm", "api",
		"python", "java", "javascript", "typescript", "golang", "rust",
		"kotlin", "ruby", "php", "c#", "c++", "sql"),
	newEnrichmentRule(models.CategoryWriting, models.SourceUser,
		"write", "essay", "story", "paragraph", "poem"),
	newEnrichmentRule(models.CategoryMath, models.SourceUser,
		"math", "equation", "calculate", "solve", "formula"),
	newEnrichmentRule(models.CategoryAIAnalytics, models.SourceSystem,
		"data", "analyze", "statistics", "ai", "ml", "training"),
}

// newEnrichmentRule compiles a whole-word pattern for keywords. A keyword
// matches only when it is not glued to another letter, digit or underscore,
// so "bug" matches "a bug!" but not "debug".
func newEnrichmentRule(category, source string, keywords ...string) enrichmentRule {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}

	const boundary = `[^\p{L}\p{N}_]`
	pattern := `(?:^|` + boundary + `)(?:` + strings.Join(quoted, "|") + `)(?:` + boundary + `|$)`

	return enrichmentRule{
		category: category,
		source:   source,
		pattern:  regexp.MustCompile(pattern),
	}
}

type enrichmentService struct{}

// NewEnrichmentService returns the rule-based EnrichmentService.
func NewEnrichmentService() EnrichmentService {
	return enrichmentService{}
}

// Classify lowercases inputText and returns the labels of the first matching
// rule, or General/User when nothing matches (including empty text).
func (enrichmentService) Classify(inputText string) (category, source string) {
	text := strings.ToLower(inputText)

	for _, rule := range enrichmentRules {
		if rule.pattern.MatchString(text) {
			return rule.category, rule.source
		}
	}

	return models.CategoryGeneral, models.SourceUser
}

// Enrich always recomputes Category; Source is only filled when the caller
// left it blank.
func (s enrichmentService) Enrich(prompt models.Prompt) models.Prompt {
	category, source := s.Classify(prompt.InputText)

	prompt.Category = category
	if strings.TrimSpace(prompt.Source) == "" {
		prompt.Source = source
	}

	return prompt
}
