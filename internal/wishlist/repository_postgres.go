package wishlist

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	addQuery = `
		INSERT INTO wishlist (device_id, product_ids, updated_at)
		VALUES ($1, ARRAY[$2]::integer[], now())
		ON CONFLICT (device_id) DO UPDATE
		SET product_ids = array_append(wishlist.product_ids, $2),
			updated_at = now()
		WHERE NOT ($2 = ANY(wishlist.product_ids))
		RETURNING product_ids
	`
	removeQuery = `
		UPDATE wishlist
		SET product_ids = array_remove(product_ids, $2),
			updated_at = now()
		WHERE device_id = $1
			AND ($2 = ANY(product_ids))
		RETURNING product_ids
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(deviceID string, productID int) ([]int, error) {
	var arr pq.Int64Array
	err := r.db.QueryRow(addQuery, deviceID, productID).Scan(&arr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAlreadySaved
		}
		return nil, err
	}
	return toInts(arr), nil
}

func (r *PostgresRepository) Remove(deviceID string, productID int) ([]int, error) {
	var arr pq.Int64Array
	err := r.db.QueryRow(removeQuery, deviceID, productID).Scan(&arr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotSaved
		}
		return nil, err
	}
	return toInts(arr), nil
}

func (r *PostgresRepository) Get(deviceID string) ([]int, error) {
	var arr pq.Int64Array
	err := r.db.QueryRow(`SELECT product_ids FROM wishlist WHERE device_id = $1`, deviceID).Scan(&arr)
	if err != nil {
		if err == sql.ErrNoRows {
			return []int{}, nil
		}
		return nil, err
	}
	return toInts(arr), nil
}

func toInts(arr pq.Int64Array) []int {
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}
