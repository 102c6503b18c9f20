package services

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// DefaultSkillVocabulary is ordered; the order decides which matches survive the limits.
var DefaultSkillVocabulary = []string{
	// Programming languages
	"javascript", "typescript", "python", "java", "c++", "c#", "go", "rust", "php", "ruby", "swift", "kotlin", "scala",
	// Web
	"react", "vue", "angular", "next.js", "nuxt.js", "svelte", "html", "css", "sass", "scss", "tailwind", "bootstrap",
	// Backend & frameworks
	"node.js", "express", "django", "flask", "spring", "laravel", "asp.net", "fastapi", "nest.js",
	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra", "elasticsearch", "dynamodb", "oracle",
	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible", "ci/cd", "github actions",
	// Tools & others
	"git", "graphql", "rest", "api", "microservices", "agile", "scrum", "jira", "confluence",
	// Data & AI
	"machine learning", "deep learning", "tensorflow", "pytorch", "pandas", "numpy", "data analysis",
	// Soft skills
	"leadership", "communication", "problem solving", "teamwork", "project management", "collaboration",
}

// DefaultSoftSkills are left out of the highlighted list when the model gave no keywords.
var DefaultSoftSkills = []string{
	"leadership", "communication", "problem solving", "teamwork", "project management", "collaboration", "agile", "scrum",
}

type SkillPolicy struct {
	Vocabulary     []string
	SoftSkills     []string
	HighlightLimit int
	MainLimit      int
}

func DefaultSkillPolicy() SkillPolicy {
	return SkillPolicy{
		Vocabulary:     DefaultSkillVocabulary,
		SoftSkills:     DefaultSoftSkills,
		HighlightLimit: 8,
		MainLimit:      12,
	}
}

type SkillMatcher struct {
	vocabulary     []string
	softSkills     map[string]struct{}
	highlightLimit int
	mainLimit      int
}

func NewSkillMatcher(policy SkillPolicy) *SkillMatcher {
	defaults := DefaultSkillPolicy()
	if len(policy.Vocabulary) == 0 {
		policy.Vocabulary = defaults.Vocabulary
	}
	if policy.SoftSkills == nil {
		policy.SoftSkills = defaults.SoftSkills
	}
	if policy.HighlightLimit < 0 {
		policy.HighlightLimit = defaults.HighlightLimit
	}
	if policy.MainLimit < 0 {
		policy.MainLimit = defaults.MainLimit
	}

	vocabulary := make([]string, 0, len(policy.Vocabulary))
	for _, term := range policy.Vocabulary {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			vocabulary = append(vocabulary, term)
		}
	}
	soft := make(map[string]struct{}, len(policy.SoftSkills))
	for _, term := range policy.SoftSkills {
		soft[strings.ToLower(strings.TrimSpace(term))] = struct{}{}
	}

	return &SkillMatcher{
		vocabulary:     vocabulary,
		softSkills:     soft,
		highlightLimit: policy.HighlightLimit,
		mainLimit:      policy.MainLimit,
	}
}

// FindSkills returns vocabulary terms contained in text, in vocabulary order.
func (m *SkillMatcher) FindSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, term := range m.vocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// Extract partitions the found skills into highlighted and main lists.
func (m *SkillMatcher) Extract(text string, keywords []string) models.SkillInsights {
	found := m.FindSkills(text)
	aiKeywords := normalizeKeywords(keywords)

	highlighted := make([]string, 0, m.highlightLimit)
	isHighlighted := make(map[string]bool)

	for _, skill := range found {
		if len(highlighted) >= m.highlightLimit {
			break
		}
		var pick bool
		if len(aiKeywords) > 0 {
			pick = overlapsAny(skill, aiKeywords)
		} else {
			_, soft := m.softSkills[skill]
			pick = !soft
		}
		if pick {
			highlighted = append(highlighted, skill)
			isHighlighted[skill] = true
		}
	}

	main := make([]string, 0, m.mainLimit)
	for _, skill := range found {
		if len(main) >= m.mainLimit {
			break
		}
		if !isHighlighted[skill] {
			main = append(main, skill)
		}
	}

	return models.SkillInsights{
		Highlighted: highlighted,
		Main:        main,
	}
}

func normalizeKeywords(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// overlapsAny is the fuzzy rule: either string contains the other.
func overlapsAny(skill string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(skill, kw) || strings.Contains(kw, skill) {
			return true
		}
	}
	return false
}
