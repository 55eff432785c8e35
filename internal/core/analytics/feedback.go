package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

const (
	lowStudyMinutes     = 30
	minDailyMinutes     = 20
	maxDailyMinutes     = 90
	weakSkillThreshold  = 60
	maintenanceAdvice   = "Maintain your excellent practice routine!"
	increaseStudyAdvice = "Increase daily study time for better results"
)

type Overall struct {
	Grade       string `json:"grade"`
	Message     string `json:"message"`
	StudyTime   int    `json:"studyTime"`
	Consistency int    `json:"consistency"`
}

// Report is the student-facing summary of a ledger.
type Report struct {
	Overall         Overall      `json:"overall"`
	Strengths       []string     `json:"strengths"`
	Improvements    []string     `json:"improvements"`
	Recommendations []string     `json:"recommendations"`
	Trends          []SkillTrend `json:"trends"`
	Radar           []RadarPoint `json:"radar"`
}

func GenerateFeedback(l domain.Ledger) Report {
	trends := TrendAnalytics(l)
	avgMinutes := AverageDailyMinutes(l)
	average := meanCurrent(trends)

	strongest, weakest := trends[0], trends[0]
	for _, t := range trends[1:] {
		if t.Current > strongest.Current {
			strongest = t
		}
		if t.Current < weakest.Current {
			weakest = t
		}
	}

	improving := modulesWithTrend(trends, TrendImproving)
	declining := modulesWithTrend(trends, TrendDeclining)

	strengths := []string{
		fmt.Sprintf("Excellent progress in %s (%d%%)", strongest.Module, strongest.Current),
	}
	if len(improving) > 0 {
		strengths = append(strengths, "Improving trend in "+strings.Join(improving, ", "))
	}

	improvements := []string{
		fmt.Sprintf("Focus more on %s (%d%%)", weakest.Module, weakest.Current),
	}
	if len(declining) > 0 {
		improvements = append(improvements, "Address declining performance in "+strings.Join(declining, ", "))
	}
	if avgMinutes < lowStudyMinutes {
		improvements = append(improvements, increaseStudyAdvice)
	}

	return Report{
		Overall: Overall{
			Grade:       Grade(average),
			Message:     overallMessage(average),
			StudyTime:   int(math.Round(avgMinutes)),
			Consistency: ConsistencyScore(l),
		},
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommendations(trends, avgMinutes),
		Trends:          trends,
		Radar:           RadarAverages(l),
	}
}

// Grade maps an average skill score to a letter grade.
func Grade(average float64) string {
	switch {
	case average >= 85:
		return "A"
	case average >= 75:
		return "B+"
	case average >= 65:
		return "B"
	case average >= 55:
		return "C+"
	case average >= 45:
		return "C"
	}
	return "D"
}

func overallMessage(average float64) string {
	switch {
	case average >= 80:
		return "Outstanding performance! You're excelling across all modules."
	case average >= 70:
		return "Great job! You're showing strong progress in your English learning journey."
	case average >= 60:
		return "Good progress! Keep up the consistent practice to see even better results."
	}
	return "You're on the right track! Focus on consistent practice to improve your skills."
}

// recommendations always returns at least one entry.
func recommendations(trends []SkillTrend, avgMinutes float64) []string {
	var recs []string

	switch {
	case avgMinutes < minDailyMinutes:
		recs = append(recs, "Aim for at least 20-30 minutes of daily practice")
	case avgMinutes > maxDailyMinutes:
		recs = append(recs, "Great dedication! Consider shorter, more focused sessions")
	}

	var weak []string
	for _, t := range trends {
		if t.Current < weakSkillThreshold {
			weak = append(weak, t.Module)
		}
	}
	if len(weak) > 0 {
		recs = append(recs, "Prioritize practice in: "+strings.Join(weak, ", "))
	}

	if len(modulesWithTrend(trends, TrendDeclining)) > 0 {
		recs = append(recs, "Review fundamentals in modules showing decline")
	}

	if len(recs) == 0 {
		recs = append(recs, maintenanceAdvice)
	}
	return recs
}

func meanCurrent(trends []SkillTrend) float64 {
	total := 0
	for _, t := range trends {
		total += t.Current
	}
	return float64(total) / float64(len(trends))
}

func modulesWithTrend(trends []SkillTrend, want Trend) []string {
	var names []string
	for _, t := range trends {
		if t.Trend == want {
			names = append(names, t.Module)
		}
	}
	return names
}
