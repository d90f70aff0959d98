package product

// Validate checks an admin-submitted product and returns a field-to-message
// map. An empty map means the product may be saved; any entry blocks the
// save and is rendered inline next to the offending control.
//
// isNew relaxes nothing except the main-image rule: existing products keep
// their stored image when none is re-uploaded.
func Validate(p Product, isNew bool) map[string]string {
	errs := make(map[string]string)

	if !p.Name.Complete() {
		errs["name"] = "name is required in both Arabic and French"
	}
	if !p.Description.Complete() {
		errs["description"] = "description is required in both Arabic and French"
	}
	if p.CategoryID == nil {
		errs["categoryId"] = "a category must be selected"
	}
	if isNew && p.Image == "" {
		errs["image"] = "a main image is required"
	}
	if !p.AllowDirectPurchase && !p.AllowAddToCart {
		errs["purchaseOptions"] = "at least one purchase option must be enabled"
	}

	if p.HasVariants() {
		for _, opt := range p.VariantOptions {
			if !opt.Name.Complete() {
				errs["variantOptions"] = "every option needs a name in both Arabic and French"
				break
			}
			if len(opt.Values) == 0 {
				errs["variantOptions"] = "every option needs at least one value"
				break
			}
			seen := make(map[string]struct{}, len(opt.Values))
			for _, v := range opt.Values {
				if _, dup := seen[v]; dup {
					errs["variantOptions"] = "option values must be unique"
					break
				}
				seen[v] = struct{}{}
			}
		}
		// all variant prices zero or negative means nothing is sellable
		sellable := false
		for _, v := range p.Variants {
			if v.Price > 0 {
				sellable = true
				break
			}
		}
		if len(p.Variants) > 0 && !sellable {
			errs["variants"] = "at least one variant needs a positive price"
		}
	} else if p.Price <= 0 {
		errs["price"] = "price must be positive"
	}

	for _, s := range p.CustomSections {
		complete := s.Title.Complete() && s.Body.Complete()
		empty := s.Title.Empty() && s.Body.Empty() && s.Image == ""
		if !complete && !empty {
			errs["customSections"] = "custom sections must be fully filled in or removed"
			break
		}
	}

	return errs
}
