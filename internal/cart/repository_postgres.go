package cart

import (
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresRepository stores each device's lines as one jsonb document in
// the `carts` table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(deviceID string) (Cart, error) {
	var raw []byte
	err := r.db.QueryRow(`SELECT items FROM carts WHERE device_id = $1`, deviceID).Scan(&raw)
	if err == sql.ErrNoRows {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, err
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return Cart{}, err
	}
	return Cart{Items: items}, nil
}

func (r *PostgresRepository) Save(deviceID string, c Cart) error {
	if c.Items == nil {
		c.Items = []Item{}
	}
	raw, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.Exec(`INSERT INTO carts (device_id, items, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (device_id) DO UPDATE SET items = $2, updated_at = $3`,
		deviceID, raw, now)
	return err
}
