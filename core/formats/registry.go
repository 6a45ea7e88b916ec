// Package formats provides the registry of corpus formats that can produce
// name sample streams. Format packages register themselves from init.
package formats

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/sample"
	"github.com/FocuswithJustin/namecorpus/core/stream"
)

// Params are the options shared by all format factories.
type Params struct {
	// Path is a file, directory or archive holding the corpus.
	Path string

	// Extension selects corpus files inside directories and archives.
	// Empty means the format's default.
	Extension string

	// Shuffle permutes the samples with the fixed default seed.
	Shuffle bool

	// Skip discards this many samples (after shuffling).
	Skip int

	// Limit caps the number of samples; 0 means no limit.
	Limit int

	// Labels keeps only samples with at least one entity of these types.
	Labels []string

	// Logger receives decoding records; nil discards them.
	Logger *slog.Logger
}

// Factory creates sample streams for one corpus format.
type Factory struct {
	Name        string
	Description string
	Extensions  []string
	Create      func(p Params) (stream.Stream[sample.NameSample], error)
}

// registry holds all registered factories.
var registry = make(map[string]*Factory)

// Register registers a factory by its name.
func Register(f *Factory) {
	if f != nil && f.Name != "" {
		registry[f.Name] = f
	}
}

// Get returns a factory by name, or nil if not found.
func Get(name string) *Factory {
	return registry[name]
}

// Has checks if a factory with the given name exists.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// List returns all registered factories sorted by name.
func List() []*Factory {
	result := make([]*Factory, 0, len(registry))
	for _, f := range registry {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Clear removes all registered factories (for testing).
func Clear() {
	registry = make(map[string]*Factory)
}

// Open creates a stream with the named format and applies the decorators
// requested by p.
func Open(name string, p Params) (stream.Stream[sample.NameSample], error) {
	f := Get(name)
	if f == nil {
		return nil, errors.NewNotFound("format", name)
	}
	base, err := f.Create(p)
	if err != nil {
		return nil, err
	}
	return Decorate(base, p)
}

// Decorate applies filter, shuffle, skip and limit, in that order. On error
// s is closed.
func Decorate(s stream.Stream[sample.NameSample], p Params) (stream.Stream[sample.NameSample], error) {
	if len(p.Labels) > 0 {
		s = stream.NewFilter(s, HasAnyLabel(p.Labels...))
	}
	if p.Shuffle {
		sh, err := stream.NewShuffle(s)
		if err != nil {
			return nil, err
		}
		s = sh
	}
	if p.Skip != 0 {
		sk, err := stream.NewSkip(s, p.Skip)
		if err != nil {
			s.Close()
			return nil, err
		}
		s = sk
	}
	if p.Limit != 0 {
		l, err := stream.NewLimit(s, p.Limit)
		if err != nil {
			s.Close()
			return nil, err
		}
		s = l
	}
	return s, nil
}

// HasAnyLabel returns a predicate accepting samples with an entity of one of
// the given types. Labels match case-insensitively.
func HasAnyLabel(labels ...string) func(sample.NameSample) bool {
	want := make([]string, len(labels))
	for i, l := range labels {
		want[i] = strings.ToLower(l)
	}
	return func(s sample.NameSample) bool {
		for _, n := range s.Names {
			if slices.Contains(want, n.Type) {
				return true
			}
		}
		return false
	}
}
