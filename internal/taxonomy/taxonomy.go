// Package taxonomy loads the skills taxonomy used for industry coverage
// scoring: a JSON mapping of category names to synonym term lists, either
// flat (category -> [terms]) or nested (category -> subcategory -> [terms]).
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// schemaJSON validates taxonomy files at load time: every category maps to
// either a list of strings or a map of subcategory -> list of strings.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "oneOf": [
      {"type": "array", "items": {"type": "string"}},
      {
        "type": "object",
        "additionalProperties": {"type": "array", "items": {"type": "string"}}
      }
    ]
  }
}`

// Taxonomy maps a category name to its lowercased synonym terms. Nested
// input is flattened to "category/subcategory" keys.
type Taxonomy map[string][]string

// LoadError reports a taxonomy file that could not be read or failed schema
// validation.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads and validates a taxonomy JSON file.
func Load(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data)
}

// Parse validates raw taxonomy JSON against the schema and flattens it.
func Parse(path string, data []byte) (Taxonomy, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	validation, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to validate", Cause: err}
	}
	if !validation.Valid() {
		msgs := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &LoadError{Path: path, Message: "schema violation: " + strings.Join(msgs, "; ")}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	tax := make(Taxonomy)
	for category, value := range raw {
		var terms []string
		if err := json.Unmarshal(value, &terms); err == nil {
			tax[category] = lower(terms)
			continue
		}
		var nested map[string][]string
		if err := json.Unmarshal(value, &nested); err != nil {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("category %q has unexpected shape", category), Cause: err}
		}
		for sub, subTerms := range nested {
			tax[category+"/"+sub] = lower(subTerms)
		}
	}
	return tax, nil
}

// Categories returns the category names in sorted order.
func (t Taxonomy) Categories() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoriesFor returns the sorted categories whose name contains the given
// industry label (case-insensitive). An empty industry selects everything.
func (t Taxonomy) CategoriesFor(industry string) []string {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return t.Categories()
	}
	var names []string
	for _, name := range t.Categories() {
		if strings.Contains(strings.ToLower(name), industry) {
			names = append(names, name)
		}
	}
	return names
}

func lower(terms []string) []string {
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = strings.ToLower(strings.TrimSpace(term))
	}
	return out
}
