package catalog

import _ "embed"

//go:embed demo.yaml
var demoYAML []byte

// Demo returns a freshly built copy of the bundled demonstration catalog:
// four arithmetic skills, six problems and three students.
func Demo() (*Catalog, error) {
	return parse(demoYAML, FormatYAML, "demo.yaml")
}

// DemoSource returns the raw bundled demonstration catalog.
func DemoSource() []byte {
	out := make([]byte, len(demoYAML))
	copy(out, demoYAML)
	return out
}
