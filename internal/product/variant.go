package product

import "strings"

// idSeparator joins option values into the convenience variant id.
const idSeparator = "-"

// GenerateCombinations expands the option axes into the full Cartesian
// product, keyed by each option's canonical key. The first option's values
// change slowest and the last option's values change fastest, so the output
// order is deterministic and diffs cleanly against an existing variant list.
//
// If there are no options, or any option has no values, no combinations are
// generated at all. A partial cross product is never returned.
func GenerateCombinations(options []VariantOption) []map[string]string {
	if len(options) == 0 {
		return nil
	}
	for _, opt := range options {
		if len(opt.Values) == 0 {
			return nil
		}
	}

	combos := []map[string]string{{}}
	for _, opt := range options {
		next := make([]map[string]string, 0, len(combos)*len(opt.Values))
		for _, combo := range combos {
			for _, value := range opt.Values {
				expanded := make(map[string]string, len(combo)+1)
				for k, v := range combo {
					expanded[k] = v
				}
				expanded[opt.Key()] = value
				next = append(next, expanded)
			}
		}
		combos = next
	}
	return combos
}

// variantID builds the convenience id for a combination: the option values
// joined in axis order.
func variantID(options []VariantOption, combo map[string]string) string {
	values := make([]string, 0, len(options))
	for _, opt := range options {
		values = append(values, combo[opt.Key()])
	}
	return strings.Join(values, idSeparator)
}

// sameOptions reports exact equality of two option maps: same keys, same
// values, same cardinality.
func sameOptions(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if other, ok := b[k]; !ok || other != v {
			return false
		}
	}
	return true
}

// Reconcile recomputes the variant list after the option axes changed,
// carrying over operator-entered data (price, original price, activity,
// images) for combinations that still exist. Combinations that no longer
// exist are dropped silently. Running it again with unchanged options
// yields an identical list.
func Reconcile(options []VariantOption, previous []Variant) []Variant {
	combos := GenerateCombinations(options)
	if len(combos) == 0 {
		return nil
	}

	out := make([]Variant, 0, len(combos))
	for _, combo := range combos {
		v := Variant{
			ID:       variantID(options, combo),
			Options:  combo,
			IsActive: true,
			Images:   []string{},
		}
		for _, prev := range previous {
			if sameOptions(prev.Options, combo) {
				v.Price = prev.Price
				v.OriginalPrice = prev.OriginalPrice
				v.IsActive = prev.IsActive
				v.Images = prev.Images
				break
			}
		}
		out = append(out, v)
	}
	return out
}

// FindVariant resolves the concrete variant matching the customer's
// current selection. Only exact equality of the full options map counts;
// a variant whose map is a superset or subset of the selection does not
// match. Returns nil when no variant matches, in which case base product
// pricing applies.
func FindVariant(p Product, selected map[string]string) *Variant {
	for i := range p.Variants {
		if sameOptions(p.Variants[i].Options, selected) {
			return &p.Variants[i]
		}
	}
	return nil
}

// DefaultSelection is the storefront's initial selection when a product
// page loads: the first value of every option axis.
func DefaultSelection(options []VariantOption) map[string]string {
	if len(options) == 0 {
		return nil
	}
	selected := make(map[string]string, len(options))
	for _, opt := range options {
		if len(opt.Values) > 0 {
			selected[opt.Key()] = opt.Values[0]
		}
	}
	return selected
}
