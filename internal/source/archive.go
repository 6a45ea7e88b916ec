package source

import (
	"io"
	"strings"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/internal/archive"
	"github.com/FocuswithJustin/namecorpus/internal/validation"
)

// Archive serves the matching entries of a tar, tar.gz or tar.xz archive as
// documents, in archive order. Reset reopens the archive.
type Archive struct {
	path string
	ext  string
	r    *archive.Reader
	done bool
}

// NewArchive opens the archive at path.
func NewArchive(path, ext string) (*Archive, error) {
	r, err := archive.NewReader(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &Archive{path: path, ext: ext, r: r}, nil
}

// Read returns the content of the next matching entry.
func (a *Archive) Read() (string, error) {
	if a.done || a.r == nil {
		return "", io.EOF
	}
	for {
		hdr, err := a.r.NextFile()
		if err == io.EOF {
			a.done = true
			return "", io.EOF
		}
		if err != nil {
			return "", errors.NewIO("read", a.path, err)
		}
		if !matches(hdr.Name, a.ext) {
			continue
		}

		name := a.path + ":" + hdr.Name
		if err := validation.CheckDocumentSize(name, hdr.Size); err != nil {
			return "", errors.NewIO("read", name, err)
		}

		var b strings.Builder
		b.Grow(int(hdr.Size))
		if _, err := io.Copy(&b, a.r); err != nil {
			return "", errors.NewIO("read", name, err)
		}
		return b.String(), nil
	}
}

// Reset closes the archive and opens it again from the start.
func (a *Archive) Reset() error {
	if err := a.Close(); err != nil {
		return err
	}
	r, err := archive.NewReader(a.path)
	if err != nil {
		return errors.NewIO("open", a.path, err)
	}
	a.r = r
	a.done = false
	return nil
}

func (a *Archive) Close() error {
	if a.r == nil {
		return nil
	}
	err := a.r.Close()
	a.r = nil
	if err != nil {
		return errors.NewIO("close", a.path, err)
	}
	return nil
}
