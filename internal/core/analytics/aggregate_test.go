package analytics_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

var today = civil.Date{Year: 2024, Month: 5, Day: 20}

// build returns n contiguous days ending today, newest first; fill shapes day i
// (0 = today).
func build(n int, fill func(i int, r *domain.DailyRecord)) domain.Ledger {
	l := make(domain.Ledger, n)
	for i := 0; i < n; i++ {
		l[i] = domain.NewEmptyDay(today.AddDays(-i))
		if fill != nil {
			fill(i, &l[i])
		}
	}
	return l
}

func allSkills(r *domain.DailyRecord, v int) {
	for _, s := range domain.AllSkills {
		r.SetScore(s, v)
	}
}

func trendFor(t *testing.T, trends []analytics.SkillTrend, s domain.Skill) analytics.SkillTrend {
	t.Helper()
	for _, tr := range trends {
		if tr.Skill == s {
			return tr
		}
	}
	t.Fatalf("no trend for %s", s)
	return analytics.SkillTrend{}
}

func TestWeeklySlice(t *testing.T) {
	t.Run("Takes the newest seven, oldest first", func(t *testing.T) {
		l := build(10, nil)
		got := analytics.WeeklySlice(l)

		require.Len(t, got, 7)
		assert.Equal(t, today.AddDays(-6), got[0].Date)
		assert.Equal(t, today, got[6].Date)
		assert.Equal(t, today, l[0].Date, "ledger order is untouched")
	})

	t.Run("Short ledger is reversed whole", func(t *testing.T) {
		got := analytics.WeeklySlice(build(3, nil))
		require.Len(t, got, 3)
		assert.Equal(t, today.AddDays(-2), got[0].Date)
		assert.Equal(t, today, got[2].Date)
	})

	t.Run("Empty ledger", func(t *testing.T) {
		assert.Empty(t, analytics.WeeklySlice(nil))
	})
}

func TestRadarAverages(t *testing.T) {
	t.Run("Mean of two records", func(t *testing.T) {
		l := build(2, func(i int, r *domain.DailyRecord) {
			r.Speaking = []int{40, 60}[i]
		})

		got := analytics.RadarAverages(l)
		require.Len(t, got, 6)
		assert.Equal(t, domain.SkillSpeaking, got[0].Skill)
		assert.Equal(t, "Speaking", got[0].Label)
		assert.Equal(t, 50, got[0].Value)
		assert.Equal(t, 100, got[0].FullMark)
	})

	t.Run("Rounds to nearest", func(t *testing.T) {
		l := build(3, func(i int, r *domain.DailyRecord) {
			r.Vocabulary = []int{1, 1, 0}[i]
		})
		assert.Equal(t, 1, analytics.RadarAverages(l)[2].Value)
	})

	t.Run("Empty ledger yields zeros", func(t *testing.T) {
		got := analytics.RadarAverages(nil)
		require.Len(t, got, 6)
		for _, p := range got {
			assert.Equal(t, 0, p.Value)
			assert.Equal(t, 100, p.FullMark)
		}
	})
}

func TestTrendAnalytics(t *testing.T) {
	t.Run("Classifies improving, declining and stable", func(t *testing.T) {
		l := build(14, func(i int, r *domain.DailyRecord) {
			allSkills(r, 70)
			if i < 7 {
				r.Speaking = 80
				r.Grammar = 60
				r.Story = 72
			}
		})

		trends := analytics.TrendAnalytics(l)
		require.Len(t, trends, 6)

		speaking := trendFor(t, trends, domain.SkillSpeaking)
		assert.Equal(t, 80, speaking.Current)
		assert.Equal(t, 70, speaking.Previous)
		assert.Equal(t, 10.0, speaking.Improvement)
		assert.Equal(t, analytics.TrendImproving, speaking.Trend)
		assert.Equal(t, "Speaking", speaking.Module)

		assert.Equal(t, analytics.TrendDeclining, trendFor(t, trends, domain.SkillGrammar).Trend)

		story := trendFor(t, trends, domain.SkillStory)
		assert.Equal(t, 2.0, story.Improvement)
		assert.Equal(t, analytics.TrendStable, story.Trend, "exactly +2 is not improving")
	})

	t.Run("Improvement keeps one decimal", func(t *testing.T) {
		l := build(14, func(i int, r *domain.DailyRecord) {
			if i == 0 {
				r.Reflex = 25
			}
		})
		reflex := trendFor(t, analytics.TrendAnalytics(l), domain.SkillReflex)
		assert.Equal(t, 3.6, reflex.Improvement)
		assert.Equal(t, 4, reflex.Current)
	})

	t.Run("Short previous window averages what exists", func(t *testing.T) {
		l := build(9, func(i int, r *domain.DailyRecord) {
			if i < 7 {
				r.Pronunciation = 50
			} else {
				r.Pronunciation = 40
			}
		})

		p := trendFor(t, analytics.TrendAnalytics(l), domain.SkillPronunciation)
		assert.Equal(t, 50, p.Current)
		assert.Equal(t, 40, p.Previous)
		assert.Equal(t, analytics.TrendImproving, p.Trend)
	})

	t.Run("Empty ledger is stable zeros", func(t *testing.T) {
		for _, tr := range analytics.TrendAnalytics(nil) {
			assert.Equal(t, 0, tr.Current)
			assert.Equal(t, 0, tr.Previous)
			assert.Equal(t, analytics.TrendStable, tr.Trend)
		}
	})
}

func TestConsistencyScore(t *testing.T) {
	t.Run("Flat composites score 100", func(t *testing.T) {
		l := build(7, func(i int, r *domain.DailyRecord) { allSkills(r, 70) })
		assert.Equal(t, 100, analytics.ConsistencyScore(l))
	})

	t.Run("Same composite from different skill mixes", func(t *testing.T) {
		l := build(7, func(i int, r *domain.DailyRecord) {
			allSkills(r, 70)
			if i%2 == 0 {
				r.Speaking, r.Reflex = 100, 40
			}
		})
		assert.Equal(t, 100, analytics.ConsistencyScore(l))
	})

	t.Run("Volatile week scores lower", func(t *testing.T) {
		l := build(7, func(i int, r *domain.DailyRecord) {
			if i%2 == 0 {
				allSkills(r, 100)
			}
		})
		got := analytics.ConsistencyScore(l)
		assert.Less(t, got, 100)
		assert.Equal(t, 51, got)
	})

	t.Run("Only the latest week counts", func(t *testing.T) {
		l := build(10, func(i int, r *domain.DailyRecord) {
			allSkills(r, 60)
			if i >= 7 {
				allSkills(r, 0)
			}
		})
		assert.Equal(t, 100, analytics.ConsistencyScore(l))
	})

	t.Run("Empty ledger scores zero", func(t *testing.T) {
		assert.Equal(t, 0, analytics.ConsistencyScore(nil))
	})
}

func TestAverageDailyMinutes(t *testing.T) {
	l := build(3, func(i int, r *domain.DailyRecord) { r.TotalTime = 30 })
	assert.InDelta(t, 90.0/7.0, analytics.AverageDailyMinutes(l), 0.0001)

	l = build(10, func(i int, r *domain.DailyRecord) { r.TotalTime = 14 })
	assert.InDelta(t, 14.0, analytics.AverageDailyMinutes(l), 0.0001)

	assert.Zero(t, analytics.AverageDailyMinutes(nil))
}

func TestStreaks(t *testing.T) {
	active := func(days ...int) func(int, *domain.DailyRecord) {
		set := map[int]bool{}
		for _, d := range days {
			set[d] = true
		}
		return func(i int, r *domain.DailyRecord) {
			if set[i] {
				r.SessionsCompleted = 1
			}
		}
	}

	tests := []struct {
		name        string
		ledger      domain.Ledger
		today       civil.Date
		wantCurrent int
		wantLongest int
	}{
		{name: "Empty ledger", ledger: nil, today: today},
		{name: "Only filler days", ledger: build(5, nil), today: today},
		{name: "Active today", ledger: build(3, active(0)), today: today, wantCurrent: 1, wantLongest: 1},
		{name: "Run broken by a filler", ledger: build(6, active(0, 1, 3, 4, 5)), today: today, wantCurrent: 2, wantLongest: 3},
		{name: "Yesterday keeps it alive", ledger: build(3, active(0, 1)), today: today.AddDays(1), wantCurrent: 2, wantLongest: 2},
		{name: "Two days idle ends it", ledger: build(3, active(0, 1, 2)), today: today.AddDays(2), wantCurrent: 0, wantLongest: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Streaks(tt.ledger, tt.today)
			assert.Equal(t, tt.wantCurrent, got.Current, "Current Streak mismatch")
			assert.Equal(t, tt.wantLongest, got.Longest, "Longest Streak mismatch")
		})
	}
}
