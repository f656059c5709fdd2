package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-dotenv-flow/models"
)

const (
	// Default is the four-layer naming scheme: .env, .env.local,
	// .env.<env> and .env.<env>.local.
	Default = ".env[.node_env][.local]"

	// EnvPlaceholder is substituted with the environment name.
	EnvPlaceholder = "node_env"
	// LocalPlaceholder marks the local override segment.
	LocalPlaceholder = "local"
)

// segmentRe matches the inside of a bracketed segment.
var segmentRe = regexp.MustCompile(`^(\W*)(` + EnvPlaceholder + `|` + LocalPlaceholder + `)(\W*)$`)

// TokenKind tells literal text apart from the two optional segments.
type TokenKind int

const (
	Literal TokenKind = iota
	OptionalEnv
	OptionalLocal
)

func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case OptionalEnv:
		return "optional-env"
	case OptionalLocal:
		return "optional-local"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one piece of a parsed pattern. For literal tokens Text holds the
// literal; for optional segments Prefix and Suffix hold the characters
// around the placeholder.
type Token struct {
	Kind   TokenKind
	Text   string
	Prefix string
	Suffix string
}

// Pattern is a validated naming pattern.
type Pattern struct {
	raw    string
	tokens []Token
}

// Layer is one file name produced by expanding a pattern.
type Layer struct {
	// Name is the file name relative to the base directory (or absolute,
	// if the pattern is).
	Name string
	// Env reports whether the environment segment is present.
	Env bool
	// Local reports whether the local segment is present.
	Local bool
}

// Parse validates s and splits it into tokens. It never touches the
// filesystem. Any syntax problem is returned as a *models.ConfigurationError.
func Parse(s string) (*Pattern, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, &models.ConfigurationError{Option: "pattern", Value: s, Err: err}
	}

	return &Pattern{raw: s, tokens: tokens}, nil
}

// MustParse is like Parse but panics on error. Meant for constants.
func MustParse(s string) *Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

func tokenize(s string) ([]Token, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyPattern
	}

	var (
		tokens  []Token
		literal strings.Builder
		seen    = map[TokenKind]bool{}
		open    = -1
	)

	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			if open >= 0 {
				return nil, fmt.Errorf("%w (offset %d)", ErrNestedSegment, i)
			}
			open = i
		case ']':
			if open < 0 {
				return nil, fmt.Errorf("%w (offset %d)", ErrUnopenedSegment, i)
			}

			tok, err := segment(s[open+1 : i])
			if err != nil {
				return nil, fmt.Errorf("%w (offset %d)", err, open)
			}
			if seen[tok.Kind] {
				return nil, fmt.Errorf("%w: %q (offset %d)", ErrDuplicateSegment, s[open:i+1], open)
			}
			seen[tok.Kind] = true

			flushLiteral()
			tokens = append(tokens, tok)
			open = -1
		default:
			if open < 0 {
				literal.WriteByte(s[i])
			}
		}
	}

	if open >= 0 {
		return nil, fmt.Errorf("%w (offset %d)", ErrUnclosedSegment, open)
	}
	flushLiteral()

	hasLiteral := false
	for _, t := range tokens {
		if t.Kind == Literal && strings.TrimSpace(t.Text) != "" {
			hasLiteral = true
			break
		}
	}
	if !hasLiteral {
		return nil, ErrNoLiteralFileName
	}

	return tokens, nil
}

func segment(content string) (Token, error) {
	m := segmentRe.FindStringSubmatch(content)
	if m == nil {
		return Token{}, fmt.Errorf("%w: %q", ErrUnknownSegment, "["+content+"]")
	}

	kind := OptionalEnv
	if m[2] == LocalPlaceholder {
		kind = OptionalLocal
	}

	return Token{Kind: kind, Text: content, Prefix: m[1], Suffix: m[3]}, nil
}

// String returns the pattern as it was given to Parse.
func (p *Pattern) String() string {
	return p.raw
}

// Tokens returns a copy of the parsed tokens in textual order.
func (p *Pattern) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)

	return out
}

// HasEnv reports whether the pattern has an environment segment.
func (p *Pattern) HasEnv() bool {
	return p.has(OptionalEnv)
}

// HasLocal reports whether the pattern has a local segment.
func (p *Pattern) HasLocal() bool {
	return p.has(OptionalLocal)
}

func (p *Pattern) has(kind TokenKind) bool {
	for _, t := range p.tokens {
		if t.Kind == kind {
			return true
		}
	}

	return false
}

// Expand returns every layer the pattern denotes for envName, lowest
// precedence first: base, base+local, base+env, base+env+local.
//
// With an empty envName the environment-specific layers are left out
// entirely. Segments absent from the pattern are simply never switched on.
func (p *Pattern) Expand(envName string) []Layer {
	envs := []bool{false}
	if envName != "" && p.HasEnv() {
		envs = append(envs, true)
	}

	locals := []bool{false}
	if p.HasLocal() {
		locals = append(locals, true)
	}

	layers := make([]Layer, 0, len(envs)*len(locals))
	for _, env := range envs {
		for _, local := range locals {
			layers = append(layers, Layer{
				Name:  p.render(envName, env, local),
				Env:   env,
				Local: local,
			})
		}
	}

	return layers
}

func (p *Pattern) render(envName string, env, local bool) string {
	var b strings.Builder
	for _, t := range p.tokens {
		switch t.Kind {
		case Literal:
			b.WriteString(t.Text)
		case OptionalEnv:
			if env {
				b.WriteString(t.Prefix + envName + t.Suffix)
			}
		case OptionalLocal:
			if local {
				b.WriteString(t.Prefix + LocalPlaceholder + t.Suffix)
			}
		}
	}

	return b.String()
}
