package util

import (
	"regexp"
	"strings"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
)

// skillKeywords is the dictionary the resume text is scanned against.
// Matching is case-insensitive; the candidate can edit the detected set
// before questions are generated.
var skillKeywords = []string{
	"python", "java", "javascript", "typescript", "golang", "c++", "c#",
	"html", "css", "react", "angular", "vue", "node.js", "django", "flask",
	"spring", "sql", "mysql", "postgresql", "mongodb", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"git", "linux", "rest api", "graphql", "kafka", "rabbitmq",
	"machine learning", "deep learning", "nlp", "pandas", "numpy",
	"tensorflow", "pytorch", "data analysis", "excel", "tableau",
	"power bi", "selenium", "jenkins", "ci/cd", "agile", "scrum",
}

// "go" on its own produces too many false positives, so it is matched
// with a word boundary instead of a substring scan.
var goPattern = regexp.MustCompile(`(?i)\b(?:golang|go)\b`)

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// ExtractSkills scans resume text for known skill keywords, preserving
// dictionary order.
func ExtractSkills(text string) *model.SkillSet {
	lowered := strings.ToLower(text)
	skills := model.NewSkillSet()
	for _, keyword := range skillKeywords {
		if strings.Contains(lowered, keyword) {
			if keyword == "golang" {
				skills.Add("golang")
				continue
			}
			skills.Add(keyword)
		}
	}
	if goPattern.MatchString(text) {
		skills.Add("golang")
	}
	return skills
}

// ExtractExperience derives a coarse seniority bucket from the resume.
// Explicit seniority words win over a years-of-experience figure; an
// unreadable resume defaults to fresher.
func ExtractExperience(text string) model.ExperienceLevel {
	lowered := strings.ToLower(text)

	switch {
	case strings.Contains(lowered, "senior") ||
		strings.Contains(lowered, "lead ") ||
		strings.Contains(lowered, "principal") ||
		strings.Contains(lowered, "architect"):
		return model.ExperienceSenior
	case strings.Contains(lowered, "intern") ||
		strings.Contains(lowered, "fresher") ||
		strings.Contains(lowered, "graduate"):
		return model.ExperienceFresher
	}

	if match := yearsPattern.FindStringSubmatch(lowered); match != nil {
		years := 0
		for _, c := range match[1] {
			years = years*10 + int(c-'0')
		}
		switch {
		case years <= 1:
			return model.ExperienceFresher
		case years <= 3:
			return model.ExperienceJunior
		case years <= 6:
			return model.ExperienceMid
		default:
			return model.ExperienceSenior
		}
	}

	return model.ExperienceFresher
}
