package storage

import (
	"context"
	"sync"
	"time"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

type InMemStorage struct {
	mu      sync.RWMutex
	seen    map[string]struct{}
	entries []expense.Entry
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{seen: make(map[string]struct{})}
}

func (s *InMemStorage) SaveTurn(_ context.Context, turn expense.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[turn.ID]; ok {
		return nil
	}
	s.seen[turn.ID] = struct{}{}
	for _, rec := range turn.Records {
		s.entries = append(s.entries, expense.Entry{
			Record:    rec,
			TurnID:    turn.ID,
			Currency:  turn.Currency,
			CreatedAt: turn.CreatedAt,
		})
	}
	return nil
}

func (s *InMemStorage) GetExpenses(_ context.Context, since time.Time) ([]expense.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if since.IsZero() || !e.CreatedAt.Before(since) {
			res = append(res, e)
		}
	}
	return res, nil
}
