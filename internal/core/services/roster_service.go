package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

// StudentSummary is one row of a teacher's class roster.
type StudentSummary struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	FullName string                 `json:"full_name"`
	Class    string                 `json:"class"`
	Section  string                 `json:"section"`
	Overall  analytics.Overall      `json:"overall"`
	Radar    []analytics.RadarPoint `json:"radar"`
}

type RosterService struct {
	users   domain.UserRepository
	ledgers *LedgerService
}

func NewRosterService(users domain.UserRepository, ledgers *LedgerService) *RosterService {
	return &RosterService{
		users:   users,
		ledgers: ledgers,
	}
}

// Students lists the students of a class and section with their current
// grade and radar. Empty filters match every class or section.
func (s *RosterService) Students(ctx context.Context, class, section string) ([]StudentSummary, error) {
	users, err := s.users.ListStudents(ctx, strings.TrimSpace(class), strings.TrimSpace(section))
	if err != nil {
		return nil, fmt.Errorf("roster service: list students: %w", err)
	}

	out := make([]StudentSummary, 0, len(users))
	for _, u := range users {
		report, err := s.ledgers.Feedback(ctx, u.Email)
		if err != nil {
			return nil, err
		}
		out = append(out, StudentSummary{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			Class:    u.Class,
			Section:  u.Section,
			Overall:  report.Overall,
			Radar:    report.Radar,
		})
	}
	return out, nil
}
