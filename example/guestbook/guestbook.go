// Package guestbook is the demo application served through the bridge.
// Entries live in postgres when a database is configured, otherwise in
// memory.
package guestbook

import (
	"context"
	"sync"
	"time"

	"github.com/go-fnbridge/fnbridge/database"
)

type Entry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	db *database.DB

	mu      sync.Mutex
	nextID  int64
	entries []Entry
}

// NewService creates a guestbook service. db may be nil, in which case
// entries are kept in memory only.
func NewService(db *database.DB) *Service {
	return &Service{db: db, nextID: 1}
}

func (s *Service) Add(ctx context.Context, name, message string) (Entry, error) {
	if s.db != nil {
		return s.addDB(ctx, name, message)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Entry{ID: s.nextID, Name: name, Message: message, CreatedAt: time.Now().UTC()}
	s.nextID++
	s.entries = append(s.entries, e)
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	if s.db != nil {
		return s.listDB(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *Service) addDB(ctx context.Context, name, message string) (Entry, error) {
	e := Entry{Name: name, Message: message, CreatedAt: time.Now().UTC()}
	row := s.db.SQL.QueryRowContext(ctx,
		`INSERT INTO guestbook_entries (name, message, created_at) VALUES ($1, $2, $3) RETURNING id`,
		e.Name, e.Message, e.CreatedAt)
	if err := row.Scan(&e.ID); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) listDB(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.SQL.QueryContext(ctx,
		`SELECT id, name, message, created_at FROM guestbook_entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
