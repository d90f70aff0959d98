package featured

import "database/sql"

// PostgresRepository implements Repository using Postgres. The list lives
// in the `featured` table, one row per product, `ord` ascending.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]int, error) {
	rows, err := r.db.Query(`SELECT product_id FROM featured ORDER BY ord, product_id`)
	if err != nil {
		return []int{}, nil
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// Replace swaps the whole list in one transaction so readers never see a
// half-written list.
func (r *PostgresRepository) Replace(productIDs []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM featured`); err != nil {
		tx.Rollback()
		return err
	}
	for i, id := range productIDs {
		if _, err := tx.Exec(`INSERT INTO featured (product_id, ord) VALUES ($1, $2)`, id, i); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
