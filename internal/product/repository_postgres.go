package product

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// PostgresRepository implements Repository over the `product` table.
// Bilingual text, option axes, variants and custom sections are stored as
// jsonb; flat string lists as text[].
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `product_id, name, description, price, original_price, category_id,
    image, sub_images, keywords, variant_options, variants,
    allow_direct_purchase, allow_add_to_cart, custom_sections, certification_images,
    created_at, updated_at`

func (r *PostgresRepository) List(f Filter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM product`
	args := []interface{}{}
	where := ""
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = fmt.Sprintf(" WHERE category_id = $%d", len(args))
	}
	if f.Keyword != "" {
		args = append(args, f.Keyword)
		clause := fmt.Sprintf("($%d = ANY(keywords) OR name->>'ar' ILIKE '%%' || $%d || '%%' OR name->>'fr' ILIKE '%%' || $%d || '%%')",
			len(args), len(args), len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where + ` ORDER BY product_id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM product WHERE product_id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now

	name, desc, opts, variants, sections, err := encodeDocs(p)
	if err != nil {
		return Product{}, err
	}
	err = r.db.QueryRow(`INSERT INTO product
        (name, description, price, original_price, category_id, image, sub_images, keywords,
         variant_options, variants, allow_direct_purchase, allow_add_to_cart,
         custom_sections, certification_images, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING product_id`,
		name, desc, p.Price, p.OriginalPrice, p.CategoryID, p.Image,
		pq.Array(p.SubImages), pq.Array(p.Keywords), opts, variants,
		p.AllowDirectPurchase, p.AllowAddToCart, sections,
		pq.Array(p.CertificationImages), p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	p.ID = id
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	name, desc, opts, variants, sections, err := encodeDocs(p)
	if err != nil {
		return Product{}, err
	}
	res, err := r.db.Exec(`UPDATE product SET
        name=$1, description=$2, price=$3, original_price=$4, category_id=$5, image=$6,
        sub_images=$7, keywords=$8, variant_options=$9, variants=$10,
        allow_direct_purchase=$11, allow_add_to_cart=$12, custom_sections=$13,
        certification_images=$14, updated_at=$15
        WHERE product_id=$16`,
		name, desc, p.Price, p.OriginalPrice, p.CategoryID, p.Image,
		pq.Array(p.SubImages), pq.Array(p.Keywords), opts, variants,
		p.AllowDirectPurchase, p.AllowAddToCart, sections,
		pq.Array(p.CertificationImages), p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM product WHERE product_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveImage stores the main image bytes for a product.
func (r *PostgresRepository) SaveImage(id int, data []byte) error {
	res, err := r.db.Exec(`UPDATE product SET product_img_data = $1 WHERE product_id = $2`, data, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetImage returns the stored image bytes, or the image path when no bytes
// were uploaded.
func (r *PostgresRepository) GetImage(id int) ([]byte, string, error) {
	var data []byte
	var path sql.NullString
	err := r.db.QueryRow(`SELECT product_img_data, image FROM product WHERE product_id = $1`, id).Scan(&data, &path)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, path.String, nil
}

func encodeDocs(p Product) (name, desc, opts, variants, sections []byte, err error) {
	if name, err = json.Marshal(p.Name); err != nil {
		return
	}
	if desc, err = json.Marshal(p.Description); err != nil {
		return
	}
	if p.VariantOptions == nil {
		p.VariantOptions = []VariantOption{}
	}
	if opts, err = json.Marshal(p.VariantOptions); err != nil {
		return
	}
	if p.Variants == nil {
		p.Variants = []Variant{}
	}
	if variants, err = json.Marshal(p.Variants); err != nil {
		return
	}
	if p.CustomSections == nil {
		p.CustomSections = []CustomSection{}
	}
	sections, err = json.Marshal(p.CustomSections)
	return
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p                                 Product
		name, desc, opts, varJS, sections []byte
		origPrice                         sql.NullFloat64
		categoryID                        sql.NullInt64
		image, createdAt, updatedAt       sql.NullString
	)
	err := row.Scan(&p.ID, &name, &desc, &p.Price, &origPrice, &categoryID,
		&image, pq.Array(&p.SubImages), pq.Array(&p.Keywords), &opts, &varJS,
		&p.AllowDirectPurchase, &p.AllowAddToCart, &sections,
		pq.Array(&p.CertificationImages), &createdAt, &updatedAt)
	if err != nil {
		return Product{}, err
	}

	_ = json.Unmarshal(name, &p.Name)
	_ = json.Unmarshal(desc, &p.Description)
	_ = json.Unmarshal(opts, &p.VariantOptions)
	_ = json.Unmarshal(varJS, &p.Variants)
	_ = json.Unmarshal(sections, &p.CustomSections)

	if origPrice.Valid {
		p.OriginalPrice = &origPrice.Float64
	}
	if categoryID.Valid {
		id := int(categoryID.Int64)
		p.CategoryID = &id
	}
	p.Image = image.String
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return p, nil
}
