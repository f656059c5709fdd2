// Package parser reads the KEY=VALUE content of a single `.env*` layer.
//
// Supported syntax:
//
//	# comment
//	KEY=value              # inline comment, value is trimmed
//	export KEY=value
//	KEY='literal $value'   # no escapes
//	KEY="a\nb \"quoted\""  # \n \r \t \" \' \\ escapes
//	KEY="spans
//	several lines"
//
// Variable references inside values are kept verbatim.
package parser

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-dotenv-flow/models"
)

var keyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Entry is one assignment. Line is the 1-based line the assignment starts on.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Document is the result of parsing one layer.
type Document struct {
	// Entries are in file order; a key may appear more than once.
	Entries []Entry
	// Ignored holds the line numbers of assignments with an invalid key
	// that were dropped in lenient mode.
	Ignored []int
}

// Map folds the entries into a mapping, later assignments winning.
func (d Document) Map() models.Variables {
	out := make(models.Variables, len(d.Entries))
	for _, e := range d.Entries {
		out[e.Key] = e.Value
	}

	return out
}

// Parser parses layer contents.
type Parser struct {
	// Strict turns assignments with an invalid key into errors instead of
	// ignoring them.
	Strict bool
}

// Parse parses content. path is only used to label errors.
func (p Parser) Parse(path, content string) (Document, error) {
	var doc Document

	lines := splitLines(content)
	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimLeft(lines[i], " \t")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fail := func(err error) (Document, error) {
			return Document{}, &models.ParseError{Path: path, Line: lineNo, Err: err}
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return fail(ErrMissingAssignment)
		}

		key := strings.TrimSpace(line[:eq])
		if rest, ok := strings.CutPrefix(key, "export "); ok {
			key = strings.TrimSpace(rest)
		}

		value, consumed, err := parseValue(line[eq+1:], lines[i+1:])
		if err != nil {
			return fail(err)
		}
		i += consumed

		if !keyRe.MatchString(key) {
			if p.Strict {
				return fail(ErrInvalidKey)
			}
			doc.Ignored = append(doc.Ignored, lineNo)
			continue
		}

		doc.Entries = append(doc.Entries, Entry{Key: key, Value: value, Line: lineNo})
	}

	return doc, nil
}

// Parse parses content leniently.
func Parse(path, content string) (Document, error) {
	return Parser{}.Parse(path, content)
}

func splitLines(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	return strings.Split(content, "\n")
}

// parseValue parses the text after `=`. A quoted value may continue on the
// following lines; consumed is how many of them were used.
func parseValue(raw string, following []string) (value string, consumed int, err error) {
	raw = strings.TrimLeft(raw, " \t")
	if raw == "" {
		return "", 0, nil
	}

	quote := raw[0]
	if quote != '"' && quote != '\'' {
		return unquoted(raw), 0, nil
	}

	text := raw[1:]
	for {
		end := closingQuote(text, quote)
		if end >= 0 {
			if rest := strings.TrimSpace(text[end+1:]); rest != "" && !strings.HasPrefix(rest, "#") {
				return "", 0, ErrTrailingContent
			}

			body := text[:end]
			if quote == '"' {
				body = unescape(body)
			}
			return body, consumed, nil
		}

		if consumed == len(following) {
			return "", 0, ErrUnterminatedQuote
		}
		text += "\n" + following[consumed]
		consumed++
	}
}

func unquoted(raw string) string {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '#' && i > 0 && (raw[i-1] == ' ' || raw[i-1] == '\t') {
			raw = raw[:i]
			break
		}
	}

	return strings.TrimSpace(raw)
}

// closingQuote returns the index of the first unescaped quote in s, or -1.
// Backslashes only escape inside double quotes.
func closingQuote(s string, quote byte) int {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && quote == '"':
			i++
		case s[i] == quote:
			return i
		}
	}

	return -1
}

var escapes = map[byte]string{
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'"':  `"`,
	'\'': "'",
	'\\': `\`,
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			if r, ok := escapes[s[i+1]]; ok {
				b.WriteString(r)
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
