package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/workers"
)

const DefaultPersistTimeout = 3 * time.Second

// exerciseSkills maps exercise types to the skill they train. Puzzles drill
// word recall and count as vocabulary.
var exerciseSkills = map[string]domain.Skill{
	"speaking":      domain.SkillSpeaking,
	"pronunciation": domain.SkillPronunciation,
	"vocabulary":    domain.SkillVocabulary,
	"grammar":       domain.SkillGrammar,
	"story":         domain.SkillStory,
	"reflex":        domain.SkillReflex,
	"puzzle":        domain.SkillVocabulary,
}

type LedgerService struct {
	repo           domain.LedgerRepository
	reports        workers.ReportCache
	worker         *workers.ReportWorker
	persistTimeout time.Duration
	now            func() time.Time
}

// NewLedgerService wires the ledger use cases. reports and worker may be nil,
// in which case feedback is always generated on demand.
func NewLedgerService(repo domain.LedgerRepository, reports workers.ReportCache, worker *workers.ReportWorker, persistTimeout time.Duration) *LedgerService {
	if persistTimeout <= 0 {
		persistTimeout = DefaultPersistTimeout
	}
	return &LedgerService{
		repo:           repo,
		reports:        reports,
		worker:         worker,
		persistTimeout: persistTimeout,
		now:            time.Now,
	}
}

// SetClock replaces the wall clock used to decide what "today" is.
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

type ActivityInput struct {
	Identity string
	// Date defaults to today in Location. Any other date is rejected.
	Date              civil.Date
	Location          *time.Location
	Scores            map[domain.Skill]int
	TotalTime         int
	SessionsCompleted int
}

type ExerciseInput struct {
	Identity     string
	ExerciseType string
	Score        int
	Minutes      int
	Location     *time.Location
}

type RecordResult struct {
	Ledger    domain.Ledger
	Persisted bool
}

// RecordActivity loads the identity's ledger, folds today's activity into it
// and saves the result. A failed save is logged and reported through
// Persisted; the reconciled ledger is still returned.
func (s *LedgerService) RecordActivity(ctx context.Context, input ActivityInput) (*RecordResult, error) {
	identity, err := normalizeIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	today := s.today(input.Location)
	date := input.Date
	if date == (civil.Date{}) {
		date = today
	}
	if date != today {
		return nil, &domain.ValidationError{
			Field:  "date",
			Reason: fmt.Sprintf("activity can only be recorded for today (%s), got %s", today, date),
		}
	}

	current := domain.NewEmptyDay(date)
	for skill, v := range input.Scores {
		if !skill.Valid() {
			return nil, domain.ErrUnknownSkill
		}
		current.SetScore(skill, v)
	}
	current.TotalTime = input.TotalTime
	current.SessionsCompleted = input.SessionsCompleted

	ledger, err := s.load(ctx, identity)
	if err != nil {
		return nil, err
	}

	next, err := domain.Reconcile(ledger, current)
	if err != nil {
		return nil, err
	}

	result := &RecordResult{Ledger: next, Persisted: true}

	saveCtx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()
	if err := s.repo.Save(saveCtx, identity, next); err != nil {
		log.Printf("[LEDGER] Failed to persist ledger for %s: %v", identity, err)
		result.Persisted = false
	}

	s.refreshReport(ctx, identity)
	return result, nil
}

// RecordExercise records one completed exercise as a single session.
func (s *LedgerService) RecordExercise(ctx context.Context, input ExerciseInput) (*RecordResult, error) {
	skill, ok := exerciseSkills[strings.ToLower(strings.TrimSpace(input.ExerciseType))]
	if !ok {
		return nil, domain.ErrUnknownSkill
	}

	return s.RecordActivity(ctx, ActivityInput{
		Identity:          input.Identity,
		Location:          input.Location,
		Scores:            map[domain.Skill]int{skill: clamp(input.Score, domain.MinScore, domain.MaxScore)},
		TotalTime:         max(input.Minutes, 0),
		SessionsCompleted: 1,
	})
}

// Ledger returns the stored ledger; a user with no history gets an empty one.
func (s *LedgerService) Ledger(ctx context.Context, identity string) (domain.Ledger, error) {
	identity, err := normalizeIdentity(identity)
	if err != nil {
		return nil, err
	}
	ledger, err := s.load(ctx, identity)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		ledger = domain.Ledger{}
	}
	return ledger, nil
}

func (s *LedgerService) Weekly(ctx context.Context, identity string) ([]domain.DailyRecord, error) {
	ledger, err := s.Ledger(ctx, identity)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklySlice(ledger), nil
}

func (s *LedgerService) Radar(ctx context.Context, identity string) ([]analytics.RadarPoint, error) {
	ledger, err := s.Ledger(ctx, identity)
	if err != nil {
		return nil, err
	}
	return analytics.RadarAverages(ledger), nil
}

func (s *LedgerService) Trends(ctx context.Context, identity string) ([]analytics.SkillTrend, error) {
	ledger, err := s.Ledger(ctx, identity)
	if err != nil {
		return nil, err
	}
	return analytics.TrendAnalytics(ledger), nil
}

func (s *LedgerService) Streak(ctx context.Context, identity string, loc *time.Location) (analytics.StreakSummary, error) {
	ledger, err := s.Ledger(ctx, identity)
	if err != nil {
		return analytics.StreakSummary{}, err
	}
	return analytics.Streaks(ledger, s.today(loc)), nil
}

// Feedback serves the cached report when one exists. On a miss the report is
// generated inline. With a worker configured only the worker fills the cache,
// so a read racing a write cannot store a stale report.
func (s *LedgerService) Feedback(ctx context.Context, identity string) (*analytics.Report, error) {
	identity, err := normalizeIdentity(identity)
	if err != nil {
		return nil, err
	}

	if s.reports != nil {
		if report, ok := s.reports.Get(ctx, identity); ok {
			return report, nil
		}
	}

	ledger, err := s.Ledger(ctx, identity)
	if err != nil {
		return nil, err
	}

	report := analytics.GenerateFeedback(ledger)
	switch {
	case s.worker != nil:
		s.worker.Enqueue(identity)
	case s.reports != nil:
		s.reports.Set(ctx, identity, &report)
	}
	return &report, nil
}

func (s *LedgerService) load(ctx context.Context, identity string) (domain.Ledger, error) {
	ledger, err := s.repo.Load(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrLedgerNotFound) {
			return nil, nil
		}
		// The next successful save replaces the unreadable row.
		if errors.Is(err, domain.ErrCorruptLedger) {
			log.Printf("[LEDGER] Ignoring unreadable ledger for %s: %v", identity, err)
			return nil, nil
		}
		return nil, fmt.Errorf("ledger service: load %s: %w", identity, err)
	}
	return ledger, nil
}

func (s *LedgerService) refreshReport(ctx context.Context, identity string) {
	if s.reports != nil {
		s.reports.Invalidate(ctx, identity)
	}
	if s.worker != nil {
		s.worker.Enqueue(identity)
	}
}

func (s *LedgerService) today(loc *time.Location) civil.Date {
	return domain.Today(s.now(), loc)
}

func normalizeIdentity(identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", domain.ErrInvalidIdentity
	}
	return identity, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
