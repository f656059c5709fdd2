package resolver

import (
	"errors"
	"os"

	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/internal/parser"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

// Options controls how layers are read and parsed.
type Options struct {
	// Encoding is a WHATWG label; empty means utf-8.
	Encoding string
	// Strict makes assignments with invalid keys a parse error.
	Strict bool
}

// Merged is the folded content of a set of layers.
type Merged struct {
	Variables models.Variables
	// Origin maps every key to the layer its value came from.
	Origin map[string]string
}

// Resolver reads and merges layers.
type Resolver struct {
	encoding *TextEncoding
	parser   parser.Parser
	sink     notify.Sink
}

// New validates opts and returns a Resolver reporting to sink.
func New(opts Options, sink notify.Sink) (*Resolver, error) {
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	if sink == nil {
		sink = notify.Nop()
	}

	return &Resolver{
		encoding: enc,
		parser:   parser.Parser{Strict: opts.Strict},
		sink:     sink,
	}, nil
}

// Resolve reads paths in order (lowest precedence first) and merges them,
// last writer wins. Every layer is read even after a failure so that all
// broken layers are reported at once; any failure makes the whole
// resolution fail with the per-layer errors joined.
func (r *Resolver) Resolve(paths []string) (*Merged, error) {
	merged := &Merged{
		Variables: models.Variables{},
		Origin:    map[string]string{},
	}

	var errs []error
	for _, path := range paths {
		doc, err := r.load(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		for _, line := range doc.Ignored {
			r.sink.Notify(notify.Event{Kind: notify.KindIgnoredLine, Path: path, Line: line})
		}

		vars := doc.Map()
		r.sink.Notify(notify.Event{Kind: notify.KindParsed, Path: path, Count: len(vars)})

		for _, key := range vars.Keys() {
			if prev, ok := merged.Origin[key]; ok {
				r.sink.Notify(notify.Event{Kind: notify.KindOverwrite, Key: key, Path: path, Previous: prev})
			}
			merged.Variables[key] = vars[key]
			merged.Origin[key] = path
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return merged, nil
}

func (r *Resolver) load(path string) (parser.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return parser.Document{}, &models.FileAccessError{Path: path, Err: err}
	}

	content, err := r.encoding.Decode(raw)
	if err != nil {
		return parser.Document{}, &models.FileAccessError{Path: path, Err: err}
	}

	return r.parser.Parse(path, content)
}

// Resolve is a shortcut for New(opts, sink) followed by Resolve(paths).
func Resolve(paths []string, opts Options, sink notify.Sink) (*Merged, error) {
	r, err := New(opts, sink)
	if err != nil {
		return nil, err
	}

	return r.Resolve(paths)
}
