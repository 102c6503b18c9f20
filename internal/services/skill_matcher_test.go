package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillMatcher_KeywordsDriveHighlights(t *testing.T) {
	m := NewSkillMatcher(DefaultSkillPolicy())

	insights := m.Extract("Built apps with React and Node.js; strong leadership.", []string{"React", "Node.js"})

	assert.Equal(t, []string{"react", "node.js"}, insights.Highlighted)
	assert.Equal(t, []string{"leadership"}, insights.Main)
}

func TestSkillMatcher_NoKeywordsExcludesSoftSkills(t *testing.T) {
	m := NewSkillMatcher(DefaultSkillPolicy())

	insights := m.Extract("Python developer. Docker, teamwork and communication.", nil)

	assert.Equal(t, []string{"python", "docker"}, insights.Highlighted)
	assert.Equal(t, []string{"communication", "teamwork"}, insights.Main)
}

func TestSkillMatcher_BlankKeywordsIgnored(t *testing.T) {
	m := NewSkillMatcher(DefaultSkillPolicy())

	insights := m.Extract("Kubernetes and leadership", []string{"", "   "})

	assert.Equal(t, []string{"kubernetes"}, insights.Highlighted)
	assert.Equal(t, []string{"leadership"}, insights.Main)
}

func TestSkillMatcher_FuzzyOverlap(t *testing.T) {
	m := NewSkillMatcher(SkillPolicy{
		Vocabulary:     []string{"postgresql", "sql", "terraform"},
		SoftSkills:     []string{},
		HighlightLimit: 8,
		MainLimit:      12,
	})

	insights := m.Extract("PostgreSQL and Terraform", []string{"SQL"})

	assert.Equal(t, []string{"postgresql", "sql"}, insights.Highlighted)
	assert.Equal(t, []string{"terraform"}, insights.Main)
}

func TestSkillMatcher_Limits(t *testing.T) {
	var vocab []string
	for i := 0; i < 30; i++ {
		vocab = append(vocab, fmt.Sprintf("skill%02d", i))
	}
	m := NewSkillMatcher(SkillPolicy{Vocabulary: vocab, SoftSkills: []string{}, HighlightLimit: 8, MainLimit: 12})
	text := strings.Join(vocab, " ")

	insights := m.Extract(text, nil)

	require.Len(t, insights.Highlighted, 8)
	require.Len(t, insights.Main, 12)
	assert.Equal(t, "skill00", insights.Highlighted[0])
	assert.Equal(t, "skill08", insights.Main[0])
	for _, h := range insights.Highlighted {
		assert.NotContains(t, insights.Main, h)
	}
}

func TestSkillMatcher_Deterministic(t *testing.T) {
	m := NewSkillMatcher(DefaultSkillPolicy())
	text := "Go, Rust, AWS, Terraform, GraphQL, Kafka, scrum"

	first := m.Extract(text, []string{"aws", "go"})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Extract(text, []string{"aws", "go"}))
	}
}

func TestSkillMatcher_NoMatchesGivesEmptyLists(t *testing.T) {
	m := NewSkillMatcher(SkillPolicy{Vocabulary: []string{"haskell"}})

	insights := m.Extract("Pastry chef", []string{"baking"})

	assert.NotNil(t, insights.Highlighted)
	assert.NotNil(t, insights.Main)
	assert.Empty(t, insights.Highlighted)
	assert.Empty(t, insights.Main)
}

func TestSkillMatcher_EmptyVocabularyFallsBack(t *testing.T) {
	m := NewSkillMatcher(SkillPolicy{HighlightLimit: 8, MainLimit: 12})

	assert.Equal(t, []string{"kubernetes"}, m.FindSkills("KUBERNETES"))
}
