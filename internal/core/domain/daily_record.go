package domain

import (
	"cloud.google.com/go/civil"
)

const (
	MinScore = 0
	MaxScore = 100
)

// DailyRecord is one calendar day of skill scores and study counters for a user.
// Day and FullDate are display labels cached when the record is written.
type DailyRecord struct {
	Date     civil.Date `json:"date"`
	Day      string     `json:"day"`
	FullDate string     `json:"fullDate"`

	Speaking      int `json:"speaking"`
	Pronunciation int `json:"pronunciation"`
	Vocabulary    int `json:"vocabulary"`
	Grammar       int `json:"grammar"`
	Story         int `json:"story"`
	Reflex        int `json:"reflex"`

	TotalTime         int `json:"totalTime"`
	SessionsCompleted int `json:"sessionsCompleted"`
}

// NewEmptyDay returns a zero-filled record for d with its labels derived.
func NewEmptyDay(d civil.Date) DailyRecord {
	r := DailyRecord{Date: d}
	r.stampLabels()
	return r
}

func (r *DailyRecord) stampLabels() {
	r.Day = DayLabel(r.Date)
	r.FullDate = FullDateLabel(r.Date)
}

// Score returns the value of the given skill field.
func (r DailyRecord) Score(s Skill) int {
	switch s {
	case SkillSpeaking:
		return r.Speaking
	case SkillPronunciation:
		return r.Pronunciation
	case SkillVocabulary:
		return r.Vocabulary
	case SkillGrammar:
		return r.Grammar
	case SkillStory:
		return r.Story
	case SkillReflex:
		return r.Reflex
	}
	return 0
}

// SetScore writes the given skill field. Unknown skills are ignored.
func (r *DailyRecord) SetScore(s Skill, v int) {
	switch s {
	case SkillSpeaking:
		r.Speaking = v
	case SkillPronunciation:
		r.Pronunciation = v
	case SkillVocabulary:
		r.Vocabulary = v
	case SkillGrammar:
		r.Grammar = v
	case SkillStory:
		r.Story = v
	case SkillReflex:
		r.Reflex = v
	}
}

// Composite is the unweighted mean of the six skill scores.
func (r DailyRecord) Composite() float64 {
	total := 0
	for _, s := range AllSkills {
		total += r.Score(s)
	}
	return float64(total) / float64(len(AllSkills))
}

// Active reports whether any practice happened that day.
func (r DailyRecord) Active() bool {
	return r.SessionsCompleted > 0 || r.TotalTime > 0
}

// Validate checks the record's own fields; ordering against a ledger is
// checked by Reconcile and Ledger.CheckInvariants.
func (r DailyRecord) Validate() error {
	if isZeroDate(r.Date) {
		return invalid("date", "is required")
	}
	if !r.Date.IsValid() {
		return invalid("date", "%q is not a calendar date", r.Date.String())
	}
	for _, s := range AllSkills {
		if v := r.Score(s); v < MinScore || v > MaxScore {
			return invalid(s.String(), "score %d outside [%d,%d]", v, MinScore, MaxScore)
		}
	}
	if r.TotalTime < 0 {
		return invalid("totalTime", "cannot be negative")
	}
	if r.SessionsCompleted < 0 {
		return invalid("sessionsCompleted", "cannot be negative")
	}
	return nil
}
