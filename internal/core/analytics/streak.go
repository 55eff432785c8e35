package analytics

import (
	"cloud.google.com/go/civil"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streaks counts runs of consecutive active days. The current run is alive
// only while its newest day is today or yesterday.
func Streaks(l domain.Ledger, today civil.Date) StreakSummary {
	var active []civil.Date
	for _, d := range l {
		if d.Active() {
			active = append(active, d.Date)
		}
	}
	if len(active) == 0 {
		return StreakSummary{}
	}

	current := 0
	if diff := domain.DaysBetween(active[0], today); diff >= 0 && diff <= 1 {
		current = 1
		for i := 0; i < len(active)-1; i++ {
			if domain.DaysBetween(active[i+1], active[i]) != 1 {
				break
			}
			current++
		}
	}

	longest := 0
	run := 1
	for i := 0; i < len(active)-1; i++ {
		if domain.DaysBetween(active[i+1], active[i]) == 1 {
			run++
			continue
		}
		longest = max(longest, run)
		run = 1
	}
	longest = max(longest, run)

	return StreakSummary{Current: current, Longest: longest}
}
