// Package define turns resolved variables into the shapes consumers need:
// compile-time constant definitions (`process.env.FOO` -> `"bar"`) and
// plain json, dotenv or yaml documents.
package define

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-dotenv-flow/models"
)

// DefaultNamespace prefixes every definition name.
const DefaultNamespace = "process.env"

// Output formats understood by Render.
const (
	FormatDefinitions = "definitions"
	FormatJSON        = "json"
	FormatDotenv      = "dotenv"
	FormatYAML        = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatDefinitions, FormatJSON, FormatDotenv, FormatYAML}

// Definitions maps `<namespace>.<KEY>` to the JSON string literal of the
// value, ready to be substituted into source code.
func Definitions(vars models.Variables, namespace string) (map[string]string, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	namespace = strings.TrimSuffix(namespace, ".")

	defs := make(map[string]string, len(vars))
	for _, key := range vars.Keys() {
		literal, err := jsonString(vars[key])
		if err != nil {
			return nil, fmt.Errorf("error encoding %s: %w", key, err)
		}
		defs[namespace+"."+key] = literal
	}

	return defs, nil
}

// jsonString encodes s as a JSON string literal without HTML escaping.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Render writes vars in the given format. Keys are always sorted.
func Render(vars models.Variables, format, namespace string) ([]byte, error) {
	switch format {
	case FormatDefinitions, "":
		defs, err := Definitions(vars, namespace)
		if err != nil {
			return nil, err
		}
		return marshalJSON(defs)
	case FormatJSON:
		return marshalJSON(map[string]string(vars))
	case FormatDotenv:
		if len(vars) == 0 {
			return nil, nil
		}
		out, err := godotenv.Marshal(vars)
		if err != nil {
			return nil, fmt.Errorf("error marshaling dotenv: %w", err)
		}
		return []byte(out + "\n"), nil
	case FormatYAML:
		out, err := yaml.Marshal(map[string]string(vars))
		if err != nil {
			return nil, fmt.Errorf("error marshaling yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func marshalJSON(v map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("error marshaling json: %w", err)
	}

	return buf.Bytes(), nil
}
