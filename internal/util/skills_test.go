package util

import (
	"testing"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	text := `Jane Doe
Backend developer with Python, PostgreSQL and Docker experience.
Built REST API services deployed on AWS with Kubernetes.`

	skills := ExtractSkills(text)

	for _, expected := range []string{"python", "postgresql", "docker", "rest api", "aws", "kubernetes"} {
		assert.True(t, skills.Contains(expected), "expected skill %q", expected)
	}
	assert.False(t, skills.Contains("java"))
}

func TestExtractSkillsGoWordBoundary(t *testing.T) {
	assert.True(t, ExtractSkills("I write services in Go and Python.").Contains("golang"))
	assert.True(t, ExtractSkills("Experienced Golang developer.").Contains("golang"))
	assert.False(t, ExtractSkills("I am a good googler.").Contains("golang"))
}

func TestExtractSkillsEmptyText(t *testing.T) {
	assert.Equal(t, 0, ExtractSkills("").Len())
}

func TestExtractExperience(t *testing.T) {
	cases := map[string]model.ExperienceLevel{
		"Senior Software Engineer at Acme":        model.ExperienceSenior,
		"Principal Architect, cloud platforms":    model.ExperienceSenior,
		"Software engineering intern, summer":     model.ExperienceFresher,
		"Recent graduate seeking a first role":    model.ExperienceFresher,
		"5 years of backend development":          model.ExperienceMid,
		"2+ years working with Python":            model.ExperienceJunior,
		"Over 10 years building web applications": model.ExperienceSenior,
		"1 year of professional experience":       model.ExperienceFresher,
		"no signal at all":                        model.ExperienceFresher,
	}

	for text, expected := range cases {
		assert.Equal(t, expected, ExtractExperience(text), "text %q", text)
	}
}
