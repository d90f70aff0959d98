package cart

import (
	"testing"

	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

func shirt() product.Product {
	return product.Product{
		ID:    1,
		Name:  locale.Text{AR: "قميص", FR: "Chemise"},
		Price: 100,
	}
}

func variant(id string, price float64) *product.Variant {
	return &product.Variant{ID: id, Options: map[string]string{"Couleur": id}, Price: price, IsActive: true}
}

func TestAddMergesSameProductAndVariant(t *testing.T) {
	var c Cart
	c.Add(shirt(), 2, variant("rouge", 90))
	c.Add(shirt(), 3, variant("rouge", 90))

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", c.Items[0].Quantity)
	}

	// a different variant of the same product is a distinct line
	c.Add(shirt(), 1, variant("bleu", 95))
	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines after differing variant, got %d", len(c.Items))
	}
}

func TestAddMergeKeepsSelection(t *testing.T) {
	var c Cart
	line := c.Add(shirt(), 1, nil)
	c.Toggle(line.CartItemID)
	c.Add(shirt(), 1, nil)

	if len(c.Items) != 1 {
		t.Fatalf("expected merge, got %d lines", len(c.Items))
	}
	if c.Items[0].Selected {
		t.Fatal("merge must leave the existing selection untouched")
	}
	if c.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Items[0].Quantity)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	var c Cart
	line := c.Add(shirt(), 2, nil)

	c.UpdateQuantity(line.CartItemID, 0)
	if len(c.Items) != 0 {
		t.Fatal("quantity 0 must remove the line")
	}

	line = c.Add(shirt(), 2, nil)
	c.UpdateQuantity(line.CartItemID, -5)
	if len(c.Items) != 0 {
		t.Fatal("negative quantity must behave like removal")
	}

	line = c.Add(shirt(), 2, nil)
	c.UpdateQuantity(line.CartItemID, 7)
	if c.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", c.Items[0].Quantity)
	}

	// unknown id is a no-op
	c.UpdateQuantity("missing", 3)
	c.Remove("missing")
	if c.Items[0].Quantity != 7 {
		t.Fatal("operations on unknown ids must not touch other lines")
	}
}

func TestSubtotalExcludesUnselected(t *testing.T) {
	var c Cart
	a := c.Add(shirt(), 1, nil) // 100
	other := shirt()
	other.ID = 2
	other.Price = 50
	b := c.Add(other, 1, nil) // 50

	c.Toggle(b.CartItemID)
	if got := c.Subtotal(); got != 100 {
		t.Fatalf("expected subtotal 100, got %v", got)
	}

	c.Toggle(a.CartItemID)
	if got := c.Subtotal(); got != 0 {
		t.Fatalf("expected subtotal 0 with nothing selected, got %v", got)
	}

	c.ToggleAll(true)
	if got := c.Subtotal(); got != 150 {
		t.Fatalf("expected subtotal 150 after select-all, got %v", got)
	}
}

func TestRemoveSelectedAndClear(t *testing.T) {
	var c Cart
	a := c.Add(shirt(), 1, nil)
	other := shirt()
	other.ID = 2
	c.Add(other, 1, nil)

	c.Toggle(a.CartItemID) // deselect first line
	c.RemoveSelected()
	if len(c.Items) != 1 || c.Items[0].CartItemID != a.CartItemID {
		t.Fatalf("expected only the unselected line to survive, got %+v", c.Items)
	}

	c.Clear()
	if len(c.Items) != 0 {
		t.Fatal("clear must empty the cart")
	}
}

func TestEndToEndVariantScenario(t *testing.T) {
	options := []product.VariantOption{
		{Name: locale.Text{AR: "اللون", FR: "Couleur"}, Values: []string{"rouge", "bleu"}},
		{Name: locale.Text{AR: "المقاس", FR: "Taille"}, Values: []string{"S", "M"}},
	}
	p := shirt()
	p.VariantOptions = options
	p.Variants = product.Reconcile(options, nil)
	for i := range p.Variants {
		if p.Variants[i].Options["Taille"] == "S" {
			p.Variants[i].Price = 90
		} else {
			p.Variants[i].Price = 95
		}
	}

	resolved := product.FindVariant(p, map[string]string{"Couleur": "bleu", "Taille": "M"})
	if resolved == nil || resolved.Price != 95 {
		t.Fatalf("expected the 95-priced variant, got %+v", resolved)
	}

	var c Cart
	line := c.Add(p, 2, resolved)
	if got := line.LineTotal(); got != 190 {
		t.Fatalf("expected line total 190, got %v", got)
	}
	if got := c.Subtotal(); got != 190 {
		t.Fatalf("expected subtotal 190, got %v", got)
	}

	c.Toggle(line.CartItemID)
	if got := c.Subtotal(); got != 0 {
		t.Fatalf("expected subtotal 0 after deselect, got %v", got)
	}
}

func TestUnitPriceFallsBackToBasePrice(t *testing.T) {
	var c Cart
	line := c.Add(shirt(), 3, nil)
	if line.UnitPrice() != 100 {
		t.Fatalf("expected base price 100, got %v", line.UnitPrice())
	}
	if line.LineTotal() != 300 {
		t.Fatalf("expected line total 300, got %v", line.LineTotal())
	}
}
