// Package analytics derives charts, trends and feedback from a ledger.
// Every function is a pure read of its input and tolerates empty ledgers.
package analytics

import (
	"math"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

const (
	WeekLength    = 7
	RadarFullMark = 100

	trendThreshold = 2.0
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type RadarPoint struct {
	Skill    domain.Skill `json:"skill"`
	Label    string       `json:"label"`
	Value    int          `json:"value"`
	FullMark int          `json:"fullMark"`
}

type SkillTrend struct {
	Skill       domain.Skill `json:"skill"`
	Module      string       `json:"module"`
	Current     int          `json:"current"`
	Previous    int          `json:"previous"`
	Improvement float64      `json:"improvement"`
	Trend       Trend        `json:"trend"`
}

// WeeklySlice returns the most recent seven records oldest-first for charting.
func WeeklySlice(l domain.Ledger) []domain.DailyRecord {
	n := min(WeekLength, len(l))
	out := make([]domain.DailyRecord, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = l[i]
	}
	return out
}

// RadarAverages is the per-skill mean across the whole ledger. An empty
// ledger yields zero for every skill.
func RadarAverages(l domain.Ledger) []RadarPoint {
	points := make([]RadarPoint, 0, len(domain.AllSkills))
	for _, s := range domain.AllSkills {
		points = append(points, RadarPoint{
			Skill:    s,
			Label:    s.Label(),
			Value:    int(math.Round(meanScore(l, s))),
			FullMark: RadarFullMark,
		})
	}
	return points
}

// TrendAnalytics compares the latest seven days against the seven before.
// Each window is averaged over the records it actually holds.
func TrendAnalytics(l domain.Ledger) []SkillTrend {
	recent, previous := window(l, 0), window(l, WeekLength)

	trends := make([]SkillTrend, 0, len(domain.AllSkills))
	for _, s := range domain.AllSkills {
		recentAvg := meanScore(recent, s)
		previousAvg := meanScore(previous, s)
		improvement := recentAvg - previousAvg

		trends = append(trends, SkillTrend{
			Skill:       s,
			Module:      s.Label(),
			Current:     int(math.Round(recentAvg)),
			Previous:    int(math.Round(previousAvg)),
			Improvement: math.Round(improvement*10) / 10,
			Trend:       classify(improvement),
		})
	}
	return trends
}

// ConsistencyScore penalises the spread of daily composite scores over the
// last week: 100 - stddev, floored at zero. Empty ledgers score zero.
func ConsistencyScore(l domain.Ledger) int {
	days := window(l, 0)
	if len(days) == 0 {
		return 0
	}

	composites := make([]float64, len(days))
	sum := 0.0
	for i, d := range days {
		composites[i] = d.Composite()
		sum += composites[i]
	}
	mean := sum / float64(len(composites))

	variance := 0.0
	for _, c := range composites {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(composites))

	return int(math.Round(math.Max(0, 100-math.Sqrt(variance))))
}

// AverageDailyMinutes spreads the last week's study time over seven days;
// days missing from a short ledger count as no study.
func AverageDailyMinutes(l domain.Ledger) float64 {
	total := 0
	for _, d := range window(l, 0) {
		total += d.TotalTime
	}
	return float64(total) / WeekLength
}

func window(l domain.Ledger, from int) domain.Ledger {
	if from >= len(l) {
		return nil
	}
	return l[from:min(from+WeekLength, len(l))]
}

func meanScore(l domain.Ledger, s domain.Skill) float64 {
	if len(l) == 0 {
		return 0
	}
	total := 0
	for _, d := range l {
		total += d.Score(s)
	}
	return float64(total) / float64(len(l))
}

func classify(improvement float64) Trend {
	switch {
	case improvement > trendThreshold:
		return TrendImproving
	case improvement < -trendThreshold:
		return TrendDeclining
	}
	return TrendStable
}
