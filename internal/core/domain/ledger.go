package domain

// WindowBound is the maximum number of daily records a ledger retains.
const WindowBound = 30

// Ledger is a user's daily records, newest first.
//
// Invariants: dates strictly descending, at most WindowBound entries, and
// adjacent entries exactly one calendar day apart.
type Ledger []DailyRecord

// Head returns the most recent record, if any.
func (l Ledger) Head() (DailyRecord, bool) {
	if len(l) == 0 {
		return DailyRecord{}, false
	}
	return l[0], true
}

// Clone returns a copy that shares no backing array with l.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// CheckInvariants returns a *ValidationError describing the first broken
// ordering, bound, contiguity or uniqueness rule.
func (l Ledger) CheckInvariants() error {
	if len(l) > WindowBound {
		return invalid("ledger", "holds %d records, bound is %d", len(l), WindowBound)
	}
	for i := range l {
		if err := l[i].Validate(); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		switch gap := DaysBetween(l[i].Date, l[i-1].Date); {
		case gap == 0:
			return invalid("ledger", "duplicate date %s", l[i].Date)
		case gap < 0:
			return invalid("ledger", "%s listed after newer %s", l[i-1].Date, l[i].Date)
		case gap > 1:
			return invalid("ledger", "missing %d day(s) between %s and %s", gap-1, l[i].Date, l[i-1].Date)
		}
	}
	return nil
}

// Reconcile folds one day's activity into the ledger and returns the new
// ledger. The input slice is never modified.
//
// A report for the head's date is merged into the head: skill scores are
// averaged (floored), time and sessions are summed. A report for a later date
// is prepended together with zero-filled records for every skipped day, capped
// so the result never exceeds WindowBound.
func Reconcile(ledger Ledger, current DailyRecord) (Ledger, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}
	current.stampLabels()

	head, ok := ledger.Head()
	if !ok {
		return Ledger{current}, nil
	}

	gap := DaysBetween(head.Date, current.Date)
	if gap < 0 {
		return nil, invalid("date", "%s precedes latest recorded day %s", current.Date, head.Date)
	}

	if gap == 0 {
		out := ledger.Clone()
		out[0] = mergeSameDay(head, current)
		return truncate(out), nil
	}

	fillers := gap - 1
	if fillers > WindowBound-1 {
		fillers = WindowBound - 1
	}

	out := make(Ledger, 0, min(1+fillers+len(ledger), WindowBound))
	out = append(out, current)
	for i := 1; i <= fillers; i++ {
		out = append(out, NewEmptyDay(current.Date.AddDays(-i)))
	}
	for _, r := range ledger {
		if len(out) == WindowBound {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func mergeSameDay(existing, incoming DailyRecord) DailyRecord {
	merged := existing
	for _, s := range AllSkills {
		merged.SetScore(s, (existing.Score(s)+incoming.Score(s))/2)
	}
	merged.TotalTime = existing.TotalTime + incoming.TotalTime
	merged.SessionsCompleted = existing.SessionsCompleted + incoming.SessionsCompleted
	return merged
}

func truncate(l Ledger) Ledger {
	if len(l) > WindowBound {
		return l[:WindowBound]
	}
	return l
}
