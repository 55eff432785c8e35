package domain

import (
	"errors"
	"strings"
)

var ErrUnknownSkill = errors.New("unknown skill")

// Skill is one of the six practice modules tracked per day.
type Skill uint8

const (
	SkillSpeaking Skill = iota
	SkillPronunciation
	SkillVocabulary
	SkillGrammar
	SkillStory
	SkillReflex
)

// AllSkills lists every skill in display order. Aggregations iterate this
// slice so that ties resolve the same way everywhere.
var AllSkills = []Skill{
	SkillSpeaking,
	SkillPronunciation,
	SkillVocabulary,
	SkillGrammar,
	SkillStory,
	SkillReflex,
}

var skillNames = [...]string{
	SkillSpeaking:      "speaking",
	SkillPronunciation: "pronunciation",
	SkillVocabulary:    "vocabulary",
	SkillGrammar:       "grammar",
	SkillStory:         "story",
	SkillReflex:        "reflex",
}

// String returns the wire name of the skill, e.g. "speaking".
func (s Skill) String() string {
	if int(s) >= len(skillNames) {
		return "unknown"
	}
	return skillNames[s]
}

// Label returns the capitalised module name shown to students, e.g. "Speaking".
func (s Skill) Label() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (s Skill) Valid() bool {
	return int(s) < len(skillNames)
}

func (s Skill) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrUnknownSkill
	}
	return []byte(s.String()), nil
}

func (s *Skill) UnmarshalText(text []byte) error {
	parsed, err := ParseSkill(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSkill resolves a wire or display name (case-insensitive) to a Skill.
func ParseSkill(name string) (Skill, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, n := range skillNames {
		if n == needle {
			return Skill(i), nil
		}
	}
	return 0, ErrUnknownSkill
}
