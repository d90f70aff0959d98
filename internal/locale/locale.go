package locale

import "strings"

// Supported locale codes. Arabic is the primary locale and the display
// fallback when a French value is missing.
const (
	AR = "ar"
	FR = "fr"
)

// Text is a bilingual display string. Every user-facing name or description
// in the catalog carries both locales; rendering falls back to Arabic.
type Text struct {
	AR string `json:"ar"`
	FR string `json:"fr"`
}

// In returns the value for the requested locale, falling back to Arabic.
func (t Text) In(locale string) string {
	if locale == FR && t.FR != "" {
		return t.FR
	}
	return t.AR
}

// Complete reports whether both locales are filled in.
func (t Text) Complete() bool {
	return strings.TrimSpace(t.AR) != "" && strings.TrimSpace(t.FR) != ""
}

// Empty reports whether neither locale is filled in.
func (t Text) Empty() bool {
	return strings.TrimSpace(t.AR) == "" && strings.TrimSpace(t.FR) == ""
}

// OptionKind classifies a variant option axis. The kind is resolved once
// when the admin saves the option and stored with it, so the storefront
// never has to sniff localized names at render time.
type OptionKind string

const (
	KindColor    OptionKind = "color"
	KindSize     OptionKind = "size"
	KindWeight   OptionKind = "weight"
	KindMaterial OptionKind = "material"
	KindCapacity OptionKind = "capacity"
	KindCustom   OptionKind = "custom"
)

// OptionCatalog maps each recognized kind to its canonical bilingual name.
// The admin UI offers these as presets; picking one fills both locales.
var OptionCatalog = map[OptionKind]Text{
	KindColor:    {AR: "اللون", FR: "Couleur"},
	KindSize:     {AR: "المقاس", FR: "Taille"},
	KindWeight:   {AR: "الوزن", FR: "Poids"},
	KindMaterial: {AR: "الخامة", FR: "Matière"},
	KindCapacity: {AR: "السعة", FR: "Capacité"},
}

// DetectKind resolves an option name to a recognized kind by case-insensitive
// comparison against the catalog names. Free-text names map to KindCustom.
func DetectKind(name Text) OptionKind {
	ar := strings.TrimSpace(name.AR)
	fr := strings.ToLower(strings.TrimSpace(name.FR))
	for kind, canonical := range OptionCatalog {
		if ar != "" && ar == canonical.AR {
			return kind
		}
		if fr != "" && fr == strings.ToLower(canonical.FR) {
			return kind
		}
	}
	return KindCustom
}
