package ontonotes

import (
	"github.com/FocuswithJustin/namecorpus/core/formats"
	"github.com/FocuswithJustin/namecorpus/core/sample"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/internal/source"
)

// FormatName is the registry name of the OntoNotes format.
const FormatName = "ontonotes"

// Factory returns the format factory for OntoNotes corpora.
func Factory() *formats.Factory {
	return &formats.Factory{
		Name:        FormatName,
		Description: "OntoNotes 4.0 ENAMEX name files (directory, tar archive or concatenated file)",
		Extensions:  []string{source.DefaultExtension},
		Create:      create,
	}
}

// Register registers this format with the format registry.
func Register() {
	formats.Register(Factory())
}

// init automatically registers this format when the package is imported.
func init() {
	Register()
}

func create(p formats.Params) (stream.Stream[sample.NameSample], error) {
	docs, err := source.Open(p.Path, p.Extension)
	if err != nil {
		return nil, err
	}
	var opts []Option
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger.With("format", FormatName, "path", p.Path)))
	}
	return NewNameSampleStream(docs, opts...), nil
}
