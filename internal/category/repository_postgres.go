package category

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository implements Repository using Postgres. The bilingual
// name lives in a jsonb column.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns category rows ordered by `ord` then id.
// If the table/query is not available the function returns an empty slice
// (caller-friendly).
func (r *PostgresRepository) List(limit int) ([]Category, error) {
	rows, err := r.db.Query(`SELECT category_id, name, image, COALESCE(ord, 0) FROM category ORDER BY COALESCE(ord, 0) DESC, category_id LIMIT $1`, limit)
	if err != nil {
		return []Category{}, nil
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			c    Category
			name []byte
			img  sql.NullString
		)
		if err := rows.Scan(&c.CategoryID, &name, &img, &c.Ord); err != nil {
			continue
		}
		_ = json.Unmarshal(name, &c.Name)
		c.Image = img.String
		out = append(out, c)
	}
	return out, nil
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	name, err := json.Marshal(c.Name)
	if err != nil {
		return Category{}, err
	}
	err = r.db.QueryRow(`INSERT INTO category (name, image, ord) VALUES ($1, $2, $3) RETURNING category_id`,
		name, c.Image, c.Ord).Scan(&c.CategoryID)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Category) (Category, error) {
	name, err := json.Marshal(c.Name)
	if err != nil {
		return Category{}, err
	}
	res, err := r.db.Exec(`UPDATE category SET name = $1, image = $2, ord = $3 WHERE category_id = $4`,
		name, c.Image, c.Ord, id)
	if err != nil {
		return Category{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Category{}, ErrNotFound
	}
	c.CategoryID = id
	return c, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM category WHERE category_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
