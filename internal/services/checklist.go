package services

import (
	"regexp"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type presenceCheck struct {
	label   string
	pattern *regexp.Regexp
}

var presenceChecks = []presenceCheck{
	{"Contact email", regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},
	{"Phone number", regexp.MustCompile(`(\+?\d[\d\s().\-]{7,}\d)`)},
	{"Profile link (LinkedIn, GitHub or portfolio)", regexp.MustCompile(`(?i)(linkedin\.com|github\.com|gitlab\.com|https?://\S+)`)},
	{"Summary or objective section", regexp.MustCompile(`(?i)\b(summary|objective|profile|about me)\b`)},
	{"Work experience section", regexp.MustCompile(`(?i)\b(experience|employment|work history)\b`)},
	{"Education section", regexp.MustCompile(`(?i)\b(education|university|college|bachelor|master|degree)\b`)},
	{"Skills section", regexp.MustCompile(`(?i)\b(skills|technologies|tech stack|competencies)\b`)},
	{"Quantified achievements", regexp.MustCompile(`(?i)(\d+(\.\d+)?\s?%|\$\s?\d|\b\d+(\.\d+)?\s?[kmx]\b|\b\d{2,}\+?\s(users|customers|clients|projects|people|engineers|requests))`)},
	{"Action verbs", regexp.MustCompile(`(?i)\b(led|built|designed|developed|implemented|launched|improved|reduced|increased|managed|created|delivered|optimized)\b`)},
}

// BuildPresenceChecklist reports which common resume signals appear in the text.
func BuildPresenceChecklist(text string) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(presenceChecks))
	for _, check := range presenceChecks {
		items = append(items, models.ChecklistItem{
			Label:   check.label,
			Present: check.pattern.MatchString(text),
		})
	}
	return items
}
