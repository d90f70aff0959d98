package product

import (
	"testing"

	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
)

func validProduct() Product {
	cat := 3
	return Product{
		Name:           locale.Text{AR: "قميص", FR: "Chemise"},
		Description:    locale.Text{AR: "وصف", FR: "Description"},
		Price:          120,
		CategoryID:     &cat,
		Image:          "/uploads/chemise.jpg",
		AllowAddToCart: true,
	}
}

func TestValidate_OK(t *testing.T) {
	if errs := Validate(validProduct(), true); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_MissingBilingualFields(t *testing.T) {
	p := validProduct()
	p.Name.FR = ""
	p.Description = locale.Text{}
	errs := Validate(p, true)
	if errs["name"] == "" {
		t.Error("expected name error")
	}
	if errs["description"] == "" {
		t.Error("expected description error")
	}
}

func TestValidate_PriceAndPurchaseRules(t *testing.T) {
	p := validProduct()
	p.Price = 0
	p.AllowAddToCart = false
	errs := Validate(p, true)
	if errs["price"] == "" {
		t.Error("expected price error when variants disabled")
	}
	if errs["purchaseOptions"] == "" {
		t.Error("expected purchase options error")
	}
}

func TestValidate_ImageOnlyRequiredForNew(t *testing.T) {
	p := validProduct()
	p.Image = ""
	if errs := Validate(p, true); errs["image"] == "" {
		t.Error("new product without image should fail")
	}
	if errs := Validate(p, false); errs["image"] != "" {
		t.Error("existing product without re-upload should pass")
	}
}

func TestValidate_VariantRules(t *testing.T) {
	p := validProduct()
	p.Price = 0 // base price is not checked when variants are on
	p.VariantOptions = []VariantOption{opt("Couleur", "rouge", "rouge")}
	p.Variants = Reconcile([]VariantOption{opt("Couleur", "rouge")}, nil)

	errs := Validate(p, true)
	if errs["variantOptions"] == "" {
		t.Error("expected duplicate-value error")
	}
	if errs["variants"] == "" {
		t.Error("expected all-prices-zero error")
	}
	if errs["price"] != "" {
		t.Error("base price must not be checked when variants are enabled")
	}
}

func TestValidate_CustomSections(t *testing.T) {
	p := validProduct()
	p.CustomSections = []CustomSection{{Title: locale.Text{AR: "عنوان"}}}
	if errs := Validate(p, true); errs["customSections"] == "" {
		t.Error("expected incomplete custom section error")
	}
}
