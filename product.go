package vcard

// Identification written into the generator-identity property
// (PRODID, or X-PRODID for 2.1).
const (
	ProductName    = "wippy-vcard"
	ProductVersion = "0.4.0"
)

// GeneratorID returns "<product> <version>".
func GeneratorID() string {
	return ProductName + " " + ProductVersion
}
