package resolver

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/MKhiriev/go-dotenv-flow/models"
)

// DefaultEncoding is used when no encoding is given.
const DefaultEncoding = "utf-8"

// TextEncoding decodes layer contents into UTF-8 strings.
type TextEncoding struct {
	name string
	enc  encoding.Encoding
}

// LookupEncoding resolves a WHATWG encoding label such as "utf-8", "utf8",
// "latin1", "windows-1251", "utf-16le" or "shift_jis". An unknown label is
// a *models.ConfigurationError.
func LookupEncoding(label string) (*TextEncoding, error) {
	name := strings.TrimSpace(label)
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, &models.ConfigurationError{Option: "encoding", Value: label, Err: err}
	}

	return &TextEncoding{name: name, enc: enc}, nil
}

// Name returns the label the encoding was looked up with.
func (t *TextEncoding) Name() string {
	return t.name
}

// Decode converts b to a UTF-8 string.
func (t *TextEncoding) Decode(b []byte) (string, error) {
	if name, _ := htmlindex.Name(t.enc); name == "utf-8" {
		if !utf8.Valid(b) {
			return "", ErrInvalidEncoding
		}
		return string(b), nil
	}

	out, err := t.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return string(out), nil
}
