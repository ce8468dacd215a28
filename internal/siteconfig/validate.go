package siteconfig

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

var (
	// TextSizes are the typography scale tokens.
	TextSizes = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl"}
	// ContactTextSizes is the reduced scale allowed on contact rows.
	ContactTextSizes = []string{"xs", "sm", "base", "lg", "xl"}
	// ButtonSizes are the button scaling tokens.
	ButtonSizes = []string{"sm", "md", "lg", "xl"}
	// ButtonShapes are the button corner tokens.
	ButtonShapes = []string{"sharp", "rounded", "pill"}
)

var contactSizeFields = map[string]bool{
	"phoneTextSize":   true,
	"addressTextSize": true,
	"emailTextSize":   true,
}

var buttonSizeFields = map[string]bool{
	"heroButtonSize":       true,
	"directionsButtonSize": true,
	"faqCallButtonSize":    true,
	"quoteButtonSize":      true,
}

var (
	schemaOnce   sync.Once
	schemaFields map[string]bool
)

// fieldNames is the set of editable field names, derived from the
// default configuration so the schema has a single source of truth.
// The gallery field is excluded: it belongs to the gallery table.
func fieldNames() map[string]bool {
	schemaOnce.Do(func() {
		raw, _ := Defaults().MarshalForStore()
		doc := map[string]json.RawMessage{}
		_ = json.Unmarshal(raw, &doc)
		schemaFields = make(map[string]bool, len(doc))
		for name := range doc {
			schemaFields[name] = true
		}
	})
	return schemaFields
}

func member(token string, set []string) bool {
	for _, s := range set {
		if s == token {
			return true
		}
	}
	return false
}

func isHexColor(v string) bool {
	if !strings.HasPrefix(v, "#") {
		return false
	}
	digits := v[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ValidateField checks that name is an editable configuration field
// and that raw is a representable value for it. Styling fields are
// checked against their token enums so an edit can never push the
// record into an unrepresentable state.
func ValidateField(name string, raw json.RawMessage) error {
	if name == "gallery" {
		return fmt.Errorf("field %q is not persisted with the configuration record", name)
	}
	if !fieldNames()[name] {
		return fmt.Errorf("unknown configuration field %q", name)
	}

	if name == "socialLinks" {
		var links []SocialLink
		if err := json.Unmarshal(raw, &links); err != nil {
			return fmt.Errorf("field %q expects a social link array", name)
		}
		for _, l := range links {
			if !ValidPlatform(l.Platform) {
				return fmt.Errorf("unknown social platform %q", l.Platform)
			}
		}
		return nil
	}

	if strings.HasPrefix(name, "show") {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("field %q expects a boolean", name)
		}
		return nil
	}

	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("field %q expects a string", name)
	}

	switch {
	case contactSizeFields[name]:
		if v != "" && !member(v, ContactTextSizes) {
			return fmt.Errorf("invalid text size %q for %q", v, name)
		}
	case buttonSizeFields[name]:
		if v != "" && !member(v, ButtonSizes) {
			return fmt.Errorf("invalid button size %q for %q", v, name)
		}
	case strings.HasSuffix(name, "Shape"):
		if v != "" && !member(v, ButtonShapes) {
			return fmt.Errorf("invalid button shape %q for %q", v, name)
		}
	case strings.HasSuffix(name, "Size"):
		if v != "" && !member(v, TextSizes) {
			return fmt.Errorf("invalid text size %q for %q", v, name)
		}
	case strings.HasSuffix(name, "Color"), strings.HasPrefix(name, "businessNameColor"):
		if v != "" && !isHexColor(v) {
			return fmt.Errorf("invalid hex color %q for %q", v, name)
		}
	}
	return nil
}

// VisibilityField reports whether name is one of the boolean
// visibility flags.
func VisibilityField(name string) bool {
	return fieldNames()[name] && strings.HasPrefix(name, "show")
}
