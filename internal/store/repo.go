package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: not found")

// profileKey is the fixed key the full profile record is stored under.
const profileKey = "profile"

// ProfileRepo persists the serialized progression profile as a single record.
// A missing record means "first run"; callers fall back to a default profile.
type ProfileRepo interface {
	// Load returns the stored profile JSON, or ErrNotFound.
	Load() ([]byte, error)

	// Save overwrites the stored profile JSON.
	Save(data []byte) error
}

// FlagRepo stores small string flags under caller-chosen keys. The challenge
// trackers namespace keys by calendar day or week start plus language id.
// Writes are independent; there is no atomicity across keys.
type FlagRepo interface {
	// Get returns the flag value, or ErrNotFound.
	Get(key string) (string, error)

	// Set overwrites the flag value.
	Set(key, value string) error
}

// kvTable wraps get/set on the kv table.
type kvTable struct {
	db *sqlx.DB
}

func (t *kvTable) get(key string) (string, error) {
	var value string
	err := t.db.Get(&value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (t *kvTable) set(key, value string) error {
	_, err := t.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

type kvProfileRepo struct {
	kv *kvTable
}

func (r *kvProfileRepo) Load() ([]byte, error) {
	v, err := r.kv.get(profileKey)
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (r *kvProfileRepo) Save(data []byte) error {
	return r.kv.set(profileKey, string(data))
}

type kvFlagRepo struct {
	kv *kvTable
}

func (r *kvFlagRepo) Get(key string) (string, error) {
	return r.kv.get(key)
}

func (r *kvFlagRepo) Set(key, value string) error {
	return r.kv.set(key, value)
}
