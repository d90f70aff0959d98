package shipping

import (
	"database/sql"
)

// Postgres repository stores shipping profiles in a dedicated table keyed
// by device.
// Table layout expected:
//   profile_id serial primary key,
//   device_id text not null,
//   label text,
//   full_name text,
//   phone text,
//   address text,
//   city text,
//   created_at text,
//   updated_at text

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertProfileQuery = `
		INSERT INTO shipping_profile (device_id, label, full_name, phone, address, city, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING profile_id, device_id, label, full_name, phone, address, city, created_at, updated_at
	`
	updateProfileQuery = `
		UPDATE shipping_profile
		SET label=$3, full_name=$4, phone=$5, address=$6, city=$7, updated_at=$8
		WHERE device_id=$1 AND profile_id=$2
		RETURNING profile_id, device_id, label, full_name, phone, address, city, created_at, updated_at
	`
	deleteProfileQuery = `
		DELETE FROM shipping_profile WHERE device_id=$1 AND profile_id=$2
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProfile(row *sql.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ProfileID, &p.DeviceID, &p.Label, &p.FullName, &p.Phone, &p.Address, &p.City, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) List(deviceID string) ([]Profile, error) {
	rows, err := r.db.Query(`SELECT profile_id, device_id, label, full_name, phone, address, city, created_at, updated_at FROM shipping_profile WHERE device_id = $1 ORDER BY profile_id`, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Profile, 0)
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ProfileID, &p.DeviceID, &p.Label, &p.FullName, &p.Phone, &p.Address, &p.City, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostgresRepository) Create(p Profile) (Profile, error) {
	row := r.db.QueryRow(insertProfileQuery, p.DeviceID, p.Label, p.FullName, p.Phone, p.Address, p.City, p.CreatedAt, p.UpdatedAt)
	return scanProfile(row)
}

func (r *PostgresRepository) Update(deviceID string, profileID int, p Profile) (Profile, error) {
	row := r.db.QueryRow(updateProfileQuery, deviceID, profileID, p.Label, p.FullName, p.Phone, p.Address, p.City, p.UpdatedAt)
	return scanProfile(row)
}

func (r *PostgresRepository) Delete(deviceID string, profileID int) error {
	res, err := r.db.Exec(deleteProfileQuery, deviceID, profileID)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
