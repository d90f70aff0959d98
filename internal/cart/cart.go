package cart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

// Item is one cart line: a product snapshot, an optional resolved variant,
// a quantity and a checked-for-checkout flag. Two lines may share a product
// when their variants differ; cartItemId tells them apart.
type Item struct {
	CartItemID string           `json:"cartItemId"`
	ProductID  int              `json:"productId"`
	Name       locale.Text      `json:"name"`
	Image      string           `json:"image,omitempty"`
	Price      float64          `json:"price"`
	Quantity   int              `json:"quantity"`
	Selected   bool             `json:"selected"`
	Variant    *product.Variant `json:"selectedVariant,omitempty"`
}

// UnitPrice is the variant price when a variant is resolved, the base
// product price otherwise.
func (it Item) UnitPrice() float64 {
	if it.Variant != nil {
		return it.Variant.Price
	}
	return it.Price
}

// LineTotal is unit price times quantity.
func (it Item) LineTotal() float64 {
	return it.UnitPrice() * float64(it.Quantity)
}

// identity distinguishes lines: same product plus same variant merge.
func (it Item) identity() string {
	variantID := ""
	if it.Variant != nil {
		variantID = it.Variant.ID
	}
	return fmt.Sprintf("%d:%s", it.ProductID, variantID)
}

// Cart is an ordered sequence of lines; insertion order is display order.
// All operations are local and synchronous; unknown ids are no-ops.
type Cart struct {
	Items []Item `json:"items"`
}

// Add appends a line for the product/variant pair, or merges quantities
// into the existing line with the same identity. New lines start selected;
// merging leaves the existing selection untouched. Returns the affected line.
func (c *Cart) Add(p product.Product, quantity int, variant *product.Variant) Item {
	if quantity < 1 {
		quantity = 1
	}
	line := Item{
		CartItemID: uuid.NewString(),
		ProductID:  p.ID,
		Name:       p.Name,
		Image:      p.Image,
		Price:      p.Price,
		Quantity:   quantity,
		Selected:   true,
		Variant:    variant,
	}
	for i := range c.Items {
		if c.Items[i].identity() == line.identity() {
			c.Items[i].Quantity += quantity
			return c.Items[i]
		}
	}
	c.Items = append(c.Items, line)
	return line
}

// UpdateQuantity sets a line's quantity; anything below 1 removes the line.
func (c *Cart) UpdateQuantity(cartItemID string, quantity int) {
	if quantity < 1 {
		c.Remove(cartItemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes a line. Unknown ids are a no-op.
func (c *Cart) Remove(cartItemID string) {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Toggle flips the checked-for-checkout flag of one line.
func (c *Cart) Toggle(cartItemID string) {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items[i].Selected = !c.Items[i].Selected
			return
		}
	}
}

// ToggleAll sets every line's selection.
func (c *Cart) ToggleAll(checked bool) {
	for i := range c.Items {
		c.Items[i].Selected = checked
	}
}

// RemoveSelected deletes every selected line.
func (c *Cart) RemoveSelected() {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if !it.Selected {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// Selected returns the checked lines in display order.
func (c *Cart) Selected() []Item {
	out := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// Subtotal sums line totals over selected lines only. Unselected lines
// stay visible and editable but never count toward checkout.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c.Items {
		if it.Selected {
			total += it.LineTotal()
		}
	}
	return total
}

// Clear empties the cart. Called after a successful order placement.
func (c *Cart) Clear() {
	c.Items = nil
}
