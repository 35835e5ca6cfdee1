package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unrecognized catalog extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// LoadFile reads, validates and builds the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data, format, path)
}

// Parse validates and builds a catalog from raw document bytes.
func Parse(data []byte, format Format) (*Catalog, error) {
	return parse(data, format, "")
}

func parse(data []byte, format Format, source string) (*Catalog, error) {
	normalized, err := normalize(data, format)
	if err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(normalized))
	if err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	var raw rawCatalog
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("decode catalog: %w", err)}
	}
	return build(raw)
}

// normalize converts the document to JSON bytes so a single schema and
// decoder serve both formats.
func normalize(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		out, err := json.Marshal(jsonSafe(doc))
		if err != nil {
			return nil, fmt.Errorf("convert YAML to JSON: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}

// jsonSafe replaces the non-finite floats YAML allows (.inf, -.inf, .nan)
// with their strconv spellings, which JSON can carry.
func jsonSafe(v any) any {
	switch n := v.(type) {
	case map[string]any:
		for k, val := range n {
			n[k] = jsonSafe(val)
		}
	case []any:
		for i, val := range n {
			n[i] = jsonSafe(val)
		}
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return fmt.Sprint(n)
		}
	}
	return v
}
