package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExperience(t *testing.T) {
	cases := map[string]ExperienceLevel{
		"fresher":   ExperienceFresher,
		"JUNIOR":    ExperienceJunior,
		"  Mid  ":   ExperienceMid,
		"senior":    ExperienceSenior,
		"":          ExperienceFresher,
		"wizard":    ExperienceFresher,
		"mid-level": ExperienceFresher,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeExperience(input), "input %q", input)
	}
}

func TestSkillSetAddNormalizesAndDeduplicates(t *testing.T) {
	s := NewSkillSet()

	assert.True(t, s.Add("  Python "))
	assert.False(t, s.Add("python"), "duplicate must be rejected")
	assert.False(t, s.Add("   "), "blank must be rejected")
	assert.True(t, s.Add("SQL"))

	assert.Equal(t, []string{"python", "sql"}, s.List(), "insertion order preserved")
	assert.True(t, s.Contains("PYTHON"))
	assert.Equal(t, 2, s.Len())
}

func TestSkillSetRemove(t *testing.T) {
	s := NewSkillSet("python", "sql", "docker")

	assert.True(t, s.Remove("SQL"))
	assert.False(t, s.Remove("sql"))
	assert.Equal(t, []string{"python", "docker"}, s.List())
}

func TestSkillSetReplace(t *testing.T) {
	s := NewSkillSet("python", "sql")
	s.Replace([]string{"go", "Go", "kafka"})

	assert.Equal(t, []string{"go", "kafka"}, s.List())
}

func TestSkillSetListIsACopy(t *testing.T) {
	s := NewSkillSet("python", "sql")
	list := s.List()
	list[0] = "mutated"

	assert.Equal(t, []string{"python", "sql"}, s.List())
}

func TestSentinelEvaluation(t *testing.T) {
	sentinel := SentinelEvaluation()

	assert.Equal(t, Evaluation{Technical: 0, Clarity: 0, Confidence: 0, FillerWords: FillerWordsUnknown}, sentinel)
	assert.True(t, sentinel.IsSentinel())
	assert.False(t, Evaluation{Technical: 7, Clarity: 6, Confidence: 8, FillerWords: FillerWordsNo}.IsSentinel())
}
