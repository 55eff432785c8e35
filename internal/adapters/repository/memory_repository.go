package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

var (
	_ domain.LedgerRepository = (*InMemoryLedgerRepository)(nil)
	_ domain.UserRepository   = (*InMemoryUserRepository)(nil)
)

// InMemoryLedgerRepository keeps ledgers in a map. Ledgers are copied on the
// way in and out so callers never share backing arrays with the store.
type InMemoryLedgerRepository struct {
	store map[string]domain.Ledger

	mu sync.RWMutex
}

func NewInMemoryLedgerRepository() *InMemoryLedgerRepository {
	return &InMemoryLedgerRepository{
		store: make(map[string]domain.Ledger),
	}
}

func (r *InMemoryLedgerRepository) Load(ctx context.Context, identity string) (domain.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger, ok := r.store[identity]
	if !ok {
		return nil, domain.ErrLedgerNotFound
	}
	return ledger.Clone(), nil
}

func (r *InMemoryLedgerRepository) Save(ctx context.Context, identity string, ledger domain.Ledger) error {
	if err := ledger.CheckInvariants(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[identity] = ledger.Clone()
	return nil
}

type InMemoryUserRepository struct {
	byID map[string]domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID: make(map[string]domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.byID[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *InMemoryUserRepository) ListStudents(ctx context.Context, class, section string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.User
	for _, u := range r.byID {
		if u.Role != domain.RoleStudent {
			continue
		}
		if (class != "" && u.Class != class) || (section != "" && u.Section != section) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].Email < out[j].Email
	})
	return out, nil
}
