// Package source provides the document streams corpus readers pull raw text
// from: directories of corpus files, tar archives, and single concatenated
// files or readers.
package source

import (
	"os"
	"strings"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/internal/archive"
)

// DefaultExtension selects OntoNotes name files.
const DefaultExtension = ".name"

// Open returns a document stream for path. Directories and archives yield one
// document per file ending in ext; any other file is read as a concatenation
// of documents. An empty ext means DefaultExtension.
func Open(path, ext string) (stream.Stream[string], error) {
	if path == "" {
		return nil, errors.NewValidation("path", "corpus path is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFound("corpus", path)
	}
	if err != nil {
		return nil, errors.NewIO("stat", path, err)
	}

	switch {
	case info.IsDir():
		d, err := NewDirectory(path, ext)
		if err != nil {
			return nil, err
		}
		return d, nil
	case archive.IsArchive(path):
		a, err := NewArchive(path, ext)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return NewReader(f), nil
}

func matches(name, ext string) bool {
	if ext == "" {
		ext = DefaultExtension
	}
	return strings.HasSuffix(name, ext)
}
