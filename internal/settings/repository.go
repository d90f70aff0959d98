package settings

import (
	"database/sql"
	"encoding/json"
	"sync"
)

type Repository interface {
	Get() (Settings, error)
	Put(s Settings) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	current Settings
	set     bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Get() (Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return Defaults(), nil
	}
	return r.current, nil
}

func (r *InMemoryRepository) Put(s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = s
	r.set = true
	return nil
}

// PostgresRepository keeps the settings document in a single-row table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() (Settings, error) {
	var raw []byte
	err := r.db.QueryRow(`SELECT doc FROM settings WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *PostgresRepository) Put(s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO settings (id, doc) VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET doc = $1`, raw)
	return err
}
