package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"product_id", "name", "description", "price", "original_price", "category_id",
		"image", "sub_images", "keywords", "variant_options", "variants",
		"allow_direct_purchase", "allow_add_to_cart", "custom_sections", "certification_images",
		"created_at", "updated_at",
	})
}

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().AddRow(
		9,
		[]byte(`{"ar":"قميص","fr":"Chemise"}`),
		[]byte(`{"ar":"وصف","fr":"Description"}`),
		120.0, nil, 3,
		"/uploads/a.jpg",
		"{}", "{chemise}",
		[]byte(`[{"name":{"ar":"اللون","fr":"Couleur"},"kind":"color","values":["rouge"]}]`),
		[]byte(`[{"id":"rouge","options":{"Couleur":"rouge"},"price":90,"isActive":true,"images":[]}]`),
		false, true,
		[]byte(`[]`), "{}",
		"2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z",
	)
	mock.ExpectQuery("FROM product WHERE product_id").WithArgs(9).WillReturnRows(rows)

	p, err := repo.GetByID(9)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if p.ID != 9 || p.Name.FR != "Chemise" {
		t.Fatalf("unexpected product %+v", p)
	}
	if len(p.Variants) != 1 || p.Variants[0].Price != 90 {
		t.Fatalf("variants not decoded: %+v", p.Variants)
	}
	if p.VariantOptions[0].Kind != "color" {
		t.Fatalf("option kind not decoded: %+v", p.VariantOptions)
	}
	if p.CategoryID == nil || *p.CategoryID != 3 {
		t.Fatalf("category not decoded: %+v", p.CategoryID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM product WHERE product_id").WithArgs(404).WillReturnRows(productRows())

	if _, err := repo.GetByID(404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresList_CategoryFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().AddRow(
		1, []byte(`{"ar":"أ","fr":"A"}`), []byte(`{"ar":"و","fr":"D"}`),
		50.0, nil, 2, "", "{}", "{}",
		[]byte(`[]`), []byte(`[]`), true, true, []byte(`[]`), "{}",
		"t", "u",
	)
	mock.ExpectQuery("WHERE category_id").WithArgs(2, 10).WillReturnRows(rows)

	cat := 2
	out, err := repo.List(Filter{CategoryID: &cat, Limit: 10})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("unexpected list result %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
