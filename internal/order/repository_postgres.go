package order

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository stores line snapshots and shipping info as jsonb on
// the `orders` row.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `order_id, device_id, items, subtotal, shipping_fee, grand_total,
    currency, payment_method, payment_ref, status, locale, shipping, created_at, updated_at`

func (r *PostgresRepository) Create(o Order) (Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, err
	}
	shipping, err := json.Marshal(o.Shipping)
	if err != nil {
		return Order{}, err
	}
	err = r.db.QueryRow(`INSERT INTO orders
        (device_id, items, subtotal, shipping_fee, grand_total, currency,
         payment_method, payment_ref, status, locale, shipping, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING order_id`,
		o.DeviceID, items, o.Subtotal, o.ShippingFee, o.GrandTotal, o.Currency,
		o.PaymentMethod, o.PaymentRef, o.Status, o.Locale, shipping, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.OrderID)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresRepository) ListAll(limit, offset int) ([]Order, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders ORDER BY order_id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) ListByDevice(deviceID string) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE device_id = $1 ORDER BY order_id DESC`, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`, status, updatedAt, id)
	if err != nil {
		return Order{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o               Order
		items, shipping []byte
		paymentRef      sql.NullString
	)
	err := row.Scan(&o.OrderID, &o.DeviceID, &items, &o.Subtotal, &o.ShippingFee,
		&o.GrandTotal, &o.Currency, &o.PaymentMethod, &paymentRef, &o.Status,
		&o.Locale, &shipping, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	_ = json.Unmarshal(items, &o.Items)
	_ = json.Unmarshal(shipping, &o.Shipping)
	o.PaymentRef = paymentRef.String
	return o, nil
}

func collect(rows *sql.Rows) ([]Order, error) {
	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
