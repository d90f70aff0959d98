package section

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository implements Repository using Postgres. Title and
// subtitle live in jsonb columns.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns section rows ordered by `ord` then id.
// If the table/query is not available the function returns an empty slice
// (caller-friendly).
func (r *PostgresRepository) List(limit int) ([]Section, error) {
	rows, err := r.db.Query(`SELECT section_id, title, subtitle, image, link, COALESCE(ord, 0) FROM section ORDER BY COALESCE(ord, 0) DESC, section_id LIMIT $1`, limit)
	if err != nil {
		return []Section{}, nil
	}
	defer rows.Close()

	out := make([]Section, 0)
	for rows.Next() {
		var (
			s        Section
			title    []byte
			subtitle []byte
			img      sql.NullString
			link     sql.NullString
		)
		if err := rows.Scan(&s.SectionID, &title, &subtitle, &img, &link, &s.Ord); err != nil {
			continue
		}
		_ = json.Unmarshal(title, &s.Title)
		_ = json.Unmarshal(subtitle, &s.Subtitle)
		s.Image = img.String
		s.Link = link.String
		out = append(out, s)
	}
	return out, nil
}

func (r *PostgresRepository) Create(s Section) (Section, error) {
	title, err := json.Marshal(s.Title)
	if err != nil {
		return Section{}, err
	}
	subtitle, err := json.Marshal(s.Subtitle)
	if err != nil {
		return Section{}, err
	}
	err = r.db.QueryRow(`INSERT INTO section (title, subtitle, image, link, ord) VALUES ($1, $2, $3, $4, $5) RETURNING section_id`,
		title, subtitle, s.Image, s.Link, s.Ord).Scan(&s.SectionID)
	if err != nil {
		return Section{}, err
	}
	return s, nil
}

func (r *PostgresRepository) Update(id int, s Section) (Section, error) {
	title, err := json.Marshal(s.Title)
	if err != nil {
		return Section{}, err
	}
	subtitle, err := json.Marshal(s.Subtitle)
	if err != nil {
		return Section{}, err
	}
	res, err := r.db.Exec(`UPDATE section SET title = $1, subtitle = $2, image = $3, link = $4, ord = $5 WHERE section_id = $6`,
		title, subtitle, s.Image, s.Link, s.Ord, id)
	if err != nil {
		return Section{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Section{}, ErrNotFound
	}
	s.SectionID = id
	return s, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM section WHERE section_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
