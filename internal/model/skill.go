package model

import "strings"

type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "fresher"
	ExperienceJunior  ExperienceLevel = "junior"
	ExperienceMid     ExperienceLevel = "mid"
	ExperienceSenior  ExperienceLevel = "senior"
)

// ExperienceLevels lists the accepted levels in display order.
var ExperienceLevels = []ExperienceLevel{
	ExperienceFresher,
	ExperienceJunior,
	ExperienceMid,
	ExperienceSenior,
}

// NormalizeExperience maps a raw label onto one of the known levels.
// Unknown or empty input falls back to fresher.
func NormalizeExperience(raw string) ExperienceLevel {
	level := ExperienceLevel(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range ExperienceLevels {
		if level == known {
			return level
		}
	}
	return ExperienceFresher
}

// SkillSet keeps unique lowercase skills in insertion order.
type SkillSet struct {
	skills []string
	seen   map[string]struct{}
}

func NewSkillSet(skills ...string) *SkillSet {
	s := &SkillSet{seen: make(map[string]struct{})}
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

// Add normalizes and appends a skill. Returns false for empty input
// or a duplicate.
func (s *SkillSet) Add(skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return false
	}
	if _, ok := s.seen[skill]; ok {
		return false
	}
	s.seen[skill] = struct{}{}
	s.skills = append(s.skills, skill)
	return true
}

func (s *SkillSet) Remove(skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if _, ok := s.seen[skill]; !ok {
		return false
	}
	delete(s.seen, skill)
	for i, existing := range s.skills {
		if existing == skill {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps the whole set for the given skills, keeping their order.
func (s *SkillSet) Replace(skills []string) {
	s.skills = nil
	s.seen = make(map[string]struct{})
	for _, skill := range skills {
		s.Add(skill)
	}
}

func (s *SkillSet) Contains(skill string) bool {
	_, ok := s.seen[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

func (s *SkillSet) Len() int {
	return len(s.skills)
}

// List returns a copy of the skills in insertion order.
func (s *SkillSet) List() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}
