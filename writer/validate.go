package writer

import (
	"github.com/wippyai/vcard"
)

// requiredKinds lists the properties each version requires.
var requiredKinds = map[vcard.Version][]vcard.Kind{
	vcard.V21: {vcard.KindStructuredName},
	vcard.V30: {vcard.KindStructuredName, vcard.KindFormattedName},
	vcard.V40: {vcard.KindFormattedName},
}

// missingRequired returns one warning per required kind absent from the
// prepared properties.
func missingRequired(props []vcard.Property, v vcard.Version) []Warning {
	var warnings []Warning
	for _, kind := range requiredKinds[v] {
		if !hasKind(props, kind) {
			warnings = append(warnings, Warning{
				Message: string(kind) + " property is required by vCard " + v.String(),
			})
		}
	}
	return warnings
}

func hasKind(props []vcard.Property, kind vcard.Kind) bool {
	for _, p := range props {
		if p.Kind() == kind {
			return true
		}
	}
	return false
}
