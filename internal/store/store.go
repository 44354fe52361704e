// Package store persists JSON values by key in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	subscriberBuffer = 8
	busyTimeoutMs    = 5000
)

// Store is a single-table key-value store with change subscriptions.
type Store struct {
	db *sql.DB

	mu      sync.Mutex
	nextSub int
	subs    map[string]map[int]chan []byte
	// seen holds the updated_at last delivered per watched key; "" is absent.
	seen map[string]string
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, busyTimeoutMs)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	store := &Store{
		db:   db,
		subs: map[string]map[int]chan []byte{},
		seen: map[string]string{},
	}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database and all subscriber channels.
func (s *Store) Close() error {
	s.mu.Lock()
	for key, subs := range s.subs {
		for id, ch := range subs {
			close(ch)
			delete(subs, id)
		}
		delete(s.subs, key)
		delete(s.seen, key)
	}
	s.mu.Unlock()
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get decodes the value stored under key into dst.
// It reports false, leaving dst untouched, when the key is absent.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// GetRaw returns the stored JSON for key.
func (s *Store) GetRaw(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set stores value as JSON under key, replacing any previous value, and
// notifies subscribers of key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	stamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), stamp)
	if err != nil {
		return err
	}
	s.publish(key, raw, stamp)
	return nil
}

// Delete removes key. Subscribers receive a nil payload.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return err
	}
	s.publish(key, nil, "")
	return nil
}

// Keys lists stored keys in lexical order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Subscribe returns a channel receiving the JSON of every later write to key.
// Writes through this Store arrive immediately; writes from other
// connections to the same file arrive on the next Sync. Slow subscribers
// miss updates rather than block writers. The returned function
// unsubscribes and closes the channel.
func (s *Store) Subscribe(key string) (<-chan []byte, func()) {
	_, stamp, err := s.stamped(context.Background(), key)
	ch := make(chan []byte, subscriberBuffer)
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	if s.subs[key] == nil {
		s.subs[key] = map[int]chan []byte{}
		if err == nil {
			s.seen[key] = stamp
		}
	}
	s.subs[key][id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if subs, ok := s.subs[key]; ok {
				if c, ok := subs[id]; ok {
					close(c)
					delete(subs, id)
				}
				if len(subs) == 0 {
					delete(s.subs, key)
					delete(s.seen, key)
				}
			}
		})
	}
	return ch, cancel
}

// Sync delivers writes to watched keys that were made through other
// connections, such as another liyah process sharing the database file.
// A key whose previous state is unknown is recorded without notifying.
func (s *Store) Sync(ctx context.Context) error {
	s.mu.Lock()
	keys := make([]string, 0, len(s.subs))
	for key := range s.subs {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		raw, stamp, err := s.stamped(ctx, key)
		if err != nil {
			return err
		}
		s.mu.Lock()
		if _, watched := s.subs[key]; !watched {
			s.mu.Unlock()
			continue
		}
		prev, known := s.seen[key]
		s.seen[key] = stamp
		s.mu.Unlock()
		if known && prev != stamp {
			s.publish(key, raw, stamp)
		}
	}
	return nil
}

// stamped returns the stored JSON and updated_at for key; both are empty
// when the key is absent.
func (s *Store) stamped(ctx context.Context, key string) ([]byte, string, error) {
	var value, stamp string
	err := s.db.QueryRowContext(ctx, `SELECT value, updated_at FROM kv WHERE key = ?`, key).Scan(&value, &stamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return []byte(value), stamp, nil
}

func (s *Store) publish(key string, raw []byte, stamp string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs, ok := s.subs[key]
	if !ok {
		return
	}
	s.seen[key] = stamp
	for _, ch := range subs {
		select {
		case ch <- raw:
		default:
		}
	}
}
